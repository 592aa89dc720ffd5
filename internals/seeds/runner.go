package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	halaqat "halaqat_backend/internals/seeds/halaqat/halaqat"
	students "halaqat_backend/internals/seeds/halaqat/students"
	teachers "halaqat_backend/internals/seeds/halaqat/teachers"
)

// RunAllSeeds loads the demo roster. Rows that already exist by name are
// skipped, so it is safe to run on every start.
func RunAllSeeds(ctx context.Context, db *gorm.DB) error {
	//* Teachers first: circles resolve their teacher by name
	if err := teachers.SeedTeachers(ctx, db); err != nil {
		return err
	}
	//* Circles before students: students resolve their circle by name
	if err := halaqat.SeedHalaqat(ctx, db); err != nil {
		return err
	}
	if err := students.SeedStudents(ctx, db); err != nil {
		return err
	}
	log.Println("✅ Seed demo selesai")
	return nil
}
