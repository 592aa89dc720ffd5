package halaqat

import (
	"context"
	_ "embed"
	"log"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"halaqat_backend/internals/features/halaqat/halaqat/dto"
	"halaqat_backend/internals/features/halaqat/halaqat/model"
	repo "halaqat_backend/internals/features/halaqat/halaqat/repository"
)

//go:embed data_halaqat.json
var data []byte

// HalaqaSeed names its teacher; Create resolves the id.
type HalaqaSeed struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	TeacherName  string `json:"teacher_name"`
	Location     string `json:"location"`
	MaxCapacity  string `json:"max_capacity"`
	ScheduleDays string `json:"schedule_days"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
}

func SeedHalaqat(ctx context.Context, db *gorm.DB) error {
	var seeds []HalaqaSeed
	if err := sonic.Unmarshal(data, &seeds); err != nil {
		return errors.Wrap(err, "decode data_halaqat.json")
	}

	for _, seed := range seeds {
		var n int64
		if err := db.WithContext(ctx).Model(&model.Halaqa{}).Where("name = ?", seed.Name).Count(&n).Error; err != nil {
			return errors.Wrap(err, "check halaqa")
		}
		if n > 0 {
			log.Printf("ℹ️ Halaqa '%s' sudah ada, lewati...", seed.Name)
			continue
		}

		h, err := dto.HalaqaForm{
			Name:         seed.Name,
			Type:         seed.Type,
			TeacherName:  seed.TeacherName,
			Location:     seed.Location,
			MaxCapacity:  seed.MaxCapacity,
			ScheduleDays: seed.ScheduleDays,
			StartTime:    seed.StartTime,
			EndTime:      seed.EndTime,
		}.ToModel()
		if err != nil {
			return errors.Wrapf(err, "seed halaqa %q", seed.Name)
		}
		if _, err := repo.Create(ctx, db, h); err != nil {
			log.Printf("❌ Gagal insert '%s': %v", seed.Name, err)
			continue
		}
		log.Printf("✅ Berhasil insert '%s'", seed.Name)
	}
	return nil
}
