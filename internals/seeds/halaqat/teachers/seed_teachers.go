package teachers

import (
	"context"
	_ "embed"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/teachers/dto"
	"halaqat_backend/internals/features/halaqat/teachers/model"
	repo "halaqat_backend/internals/features/halaqat/teachers/repository"
)

//go:embed data_teachers.json
var data []byte

type TeacherSeed struct {
	Name            string `json:"name"`
	Gender          string `json:"gender"`
	Phone           string `json:"phone"`
	Qualification   string `json:"qualification"`
	Specialization  string `json:"specialization"`
	ExperienceYears string `json:"experience_years"`
}

func SeedTeachers(ctx context.Context, db *gorm.DB) error {
	var seeds []TeacherSeed
	if err := sonic.Unmarshal(data, &seeds); err != nil {
		return errors.Wrap(err, "decode data_teachers.json")
	}

	now := time.Now()
	for _, seed := range seeds {
		var n int64
		if err := db.WithContext(ctx).Model(&model.Teacher{}).Where("name = ?", seed.Name).Count(&n).Error; err != nil {
			return errors.Wrap(err, "check teacher")
		}
		if n > 0 {
			log.Printf("ℹ️ Teacher '%s' sudah ada, lewati...", seed.Name)
			continue
		}

		t, err := dto.TeacherForm{
			Name:            seed.Name,
			Gender:          seed.Gender,
			Phone:           seed.Phone,
			Qualification:   seed.Qualification,
			Specialization:  seed.Specialization,
			ExperienceYears: seed.ExperienceYears,
		}.ToModel(now)
		if err != nil {
			return errors.Wrapf(err, "seed teacher %q", seed.Name)
		}
		if _, err := repo.Create(ctx, db, t); err != nil {
			log.Printf("❌ Gagal insert '%s': %v", seed.Name, err)
			continue
		}
		log.Printf("✅ Berhasil insert '%s'", seed.Name)
	}
	return nil
}
