package students

import (
	"context"
	_ "embed"
	"log"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/students/dto"
	"halaqat_backend/internals/features/halaqat/students/model"
	repo "halaqat_backend/internals/features/halaqat/students/repository"
)

//go:embed data_students.json
var data []byte

type StudentSeed struct {
	Name              string `json:"name"`
	Age               string `json:"age"`
	Gender            string `json:"gender"`
	GuardianName      string `json:"guardian_name"`
	GuardianPhone     string `json:"guardian_phone"`
	Halaqa            string `json:"halaqa"`
	MemorizationLevel string `json:"memorization_level"`
}

func SeedStudents(ctx context.Context, db *gorm.DB) error {
	var seeds []StudentSeed
	if err := sonic.Unmarshal(data, &seeds); err != nil {
		return errors.Wrap(err, "decode data_students.json")
	}

	now := time.Now()
	for _, seed := range seeds {
		var n int64
		if err := db.WithContext(ctx).Model(&model.Student{}).Where("name = ?", seed.Name).Count(&n).Error; err != nil {
			return errors.Wrap(err, "check student")
		}
		if n > 0 {
			log.Printf("ℹ️ Student '%s' sudah ada, lewati...", seed.Name)
			continue
		}

		halaqaID := ""
		var ids []int64
		if err := db.WithContext(ctx).Table("halaqat").Where("name = ?", seed.Halaqa).Order("id").Limit(1).Pluck("id", &ids).Error; err != nil {
			return errors.Wrap(err, "lookup halaqa")
		}
		if len(ids) == 1 {
			halaqaID = strconv.FormatInt(ids[0], 10)
		}

		s, err := dto.StudentForm{
			Name:              seed.Name,
			Age:               seed.Age,
			Gender:            seed.Gender,
			GuardianName:      seed.GuardianName,
			GuardianPhone:     seed.GuardianPhone,
			HalaqaID:          halaqaID,
			MemorizationLevel: seed.MemorizationLevel,
		}.ToModel(now)
		if err != nil {
			return errors.Wrapf(err, "seed student %q", seed.Name)
		}
		if _, err := repo.Create(ctx, db, s); err != nil {
			log.Printf("❌ Gagal insert '%s': %v", seed.Name, err)
			continue
		}
		log.Printf("✅ Berhasil insert '%s'", seed.Name)
	}
	return nil
}
