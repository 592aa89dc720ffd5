package database

import (
	"context"
	"log"
	"strings"

	"github.com/pkg/errors"
)

// Column types per backend. SQLite keeps dates and times as text.
type dialect struct {
	pk, str, money, date, clock, stamp, suffix string
}

var dialects = map[Backend]dialect{
	BackendPostgres: {
		pk: "SERIAL PRIMARY KEY", str: "VARCHAR(255)", money: "DECIMAL(12,2)",
		date: "DATE", clock: "TIME", stamp: "TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
	},
	BackendMySQL: {
		pk: "INT AUTO_INCREMENT PRIMARY KEY", str: "VARCHAR(255)", money: "DECIMAL(12,2)",
		date: "DATE", clock: "TIME", stamp: "TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
		suffix: " DEFAULT CHARSET=utf8mb4",
	},
	BackendSQLite: {
		pk: "INTEGER PRIMARY KEY AUTOINCREMENT", str: "TEXT", money: "REAL",
		date: "DATE", clock: "TEXT", stamp: "DATETIME DEFAULT CURRENT_TIMESTAMP",
	},
}

var tableDDL = []string{
	`CREATE TABLE IF NOT EXISTS teachers (
		id {pk},
		name {str} NOT NULL,
		gender {str},
		phone {str},
		email {str},
		qualification {str},
		specialization {str},
		experience_years INTEGER DEFAULT 0,
		salary {money},
		status {str} DEFAULT 'نشط',
		hire_date {date},
		notes TEXT,
		created_date {stamp}
	){suffix}`,
	`CREATE TABLE IF NOT EXISTS halaqat (
		id {pk},
		name {str} NOT NULL,
		type {str},
		teacher_id INTEGER,
		teacher_name {str},
		location {str},
		max_capacity INTEGER DEFAULT 30,
		schedule_days {str},
		start_time {clock},
		end_time {clock},
		created_date {stamp}
	){suffix}`,
	`CREATE TABLE IF NOT EXISTS students (
		id {pk},
		name {str} NOT NULL,
		age INTEGER,
		gender {str},
		phone {str},
		email {str},
		guardian_name {str},
		guardian_phone {str},
		halaqa_id INTEGER,
		memorization_level {str},
		enrollment_date {date},
		status {str} DEFAULT 'نشط',
		created_date {stamp}
	){suffix}`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id {pk},
		student_id INTEGER NOT NULL,
		halaqa_id INTEGER,
		attendance_date {date} NOT NULL,
		status {str} NOT NULL,
		memorization_progress TEXT,
		performance {str},
		notes TEXT,
		created_date {stamp},
		UNIQUE (student_id, attendance_date)
	){suffix}`,
	`CREATE TABLE IF NOT EXISTS donations (
		id {pk},
		donor_name {str},
		donor_phone {str},
		donor_email {str},
		amount {money} NOT NULL DEFAULT 0,
		donation_date {date},
		purpose {str},
		halaqa_id INTEGER,
		notes TEXT,
		status {str} DEFAULT 'مكتمل',
		created_date {stamp}
	){suffix}`,
	`CREATE TABLE IF NOT EXISTS fundraising_campaigns (
		id {pk},
		campaign_name {str} NOT NULL,
		platform {str},
		target_amount {money} DEFAULT 0,
		current_amount {money} DEFAULT 0,
		target_audience {str},
		campaign_description TEXT,
		campaign_hashtags TEXT,
		start_date {date},
		end_date {date},
		status {str} DEFAULT 'مخطط',
		ai_suggestions TEXT,
		best_posting_times TEXT,
		created_by {str} DEFAULT 'النظام',
		created_date {stamp}
	){suffix}`,
}

// Circles created before teacher_id existed carry only the teacher's name.
const backfillTeacherIDs = `UPDATE halaqat
	SET teacher_id = (SELECT MIN(t.id) FROM teachers t WHERE t.name = halaqat.teacher_name)
	WHERE teacher_id IS NULL AND teacher_name IS NOT NULL AND teacher_name <> ''`

// Tables lists every table the bootstrapper owns, in creation order.
var Tables = []string{"teachers", "halaqat", "students", "attendance", "donations", "fundraising_campaigns"}

func renderDDL(d dialect, ddl string) string {
	return strings.NewReplacer(
		"{pk}", d.pk,
		"{str}", d.str,
		"{money}", d.money,
		"{date}", d.date,
		"{clock}", d.clock,
		"{stamp}", d.stamp,
		"{suffix}", d.suffix,
	).Replace(ddl)
}

// EnsureSchema creates any missing table. Existing tables and rows are untouched.
func EnsureSchema(st *Storage) error {
	d, ok := dialects[st.backend]
	if !ok {
		return errors.Errorf("no schema dialect for backend %q", st.backend)
	}
	for i, ddl := range tableDDL {
		if err := st.DB.Exec(renderDDL(d, ddl)).Error; err != nil {
			return errors.Wrapf(err, "create table %s", Tables[i])
		}
	}
	if err := st.DB.Exec(backfillTeacherIDs).Error; err != nil {
		return errors.Wrap(err, "backfill halaqat.teacher_id")
	}
	return nil
}

// Bootstrap runs EnsureSchema at startup; a failure is logged, never fatal.
func Bootstrap(ctx context.Context, st *Storage) {
	if err := EnsureSchema(&Storage{DB: st.DB.WithContext(ctx), backend: st.backend, x: st.x}); err != nil {
		log.Printf("[ERROR] schema bootstrap gagal (%s): %v", st.backend, err)
		return
	}
	log.Printf("[INFO] schema siap (%s)", st.backend)
}
