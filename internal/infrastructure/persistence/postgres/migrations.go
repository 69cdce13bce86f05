package postgres

// GetMigrations returns all embedded migrations.
func GetMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_students",
			UpSQL:   migration001Up,
			DownSQL: migration001Down,
		},
		{
			Version: 2,
			Name:    "create_lessons",
			UpSQL:   migration002Up,
			DownSQL: migration002Down,
		},
		{
			Version: 3,
			Name:    "create_snapshot_meta",
			UpSQL:   migration003Up,
			DownSQL: migration003Down,
		},
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 001: CREATE STUDENTS
// ══════════════════════════════════════════════════════════════════════════════

const migration001Up = `
-- Students in list order. The name is the identity used by lessons.
CREATE TABLE IF NOT EXISTS students (
    name VARCHAR(100) PRIMARY KEY,
    phone VARCHAR(32) NOT NULL,
    email VARCHAR(254) NOT NULL,
    address TEXT NOT NULL,
    subject VARCHAR(50) NOT NULL,
    tags TEXT[] NOT NULL DEFAULT '{}',
    position INTEGER NOT NULL,
    updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT valid_position CHECK (position >= 0)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_students_position ON students(position);
CREATE INDEX IF NOT EXISTS idx_students_subject ON students(subject);

CREATE TABLE IF NOT EXISTS assignments (
    student_name VARCHAR(100) NOT NULL REFERENCES students(name) ON DELETE CASCADE ON UPDATE CASCADE,
    name VARCHAR(100) NOT NULL,
    due_date DATE,
    completed BOOLEAN NOT NULL DEFAULT FALSE,
    position INTEGER NOT NULL,

    PRIMARY KEY (student_name, name)
);

CREATE INDEX IF NOT EXISTS idx_assignments_pending ON assignments(student_name) WHERE NOT completed;
`

const migration001Down = `
DROP TABLE IF EXISTS assignments;
DROP TABLE IF EXISTS students;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 002: CREATE LESSONS
// ══════════════════════════════════════════════════════════════════════════════

const migration002Up = `
CREATE TABLE IF NOT EXISTS lessons (
    student_name VARCHAR(100) NOT NULL REFERENCES students(name) ON DELETE CASCADE ON UPDATE CASCADE,
    date DATE NOT NULL,
    time TIME NOT NULL,
    subject VARCHAR(50) NOT NULL,
    position INTEGER NOT NULL,

    PRIMARY KEY (student_name, date, time, subject)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_lessons_position ON lessons(position);
CREATE INDEX IF NOT EXISTS idx_lessons_schedule ON lessons(date, time);
`

const migration002Down = `
DROP TABLE IF EXISTS lessons;
`

// ══════════════════════════════════════════════════════════════════════════════
// MIGRATION 003: CREATE SNAPSHOT META
// ══════════════════════════════════════════════════════════════════════════════

const migration003Up = `
-- One row, written with every save. Its absence means nothing was saved yet,
-- which is different from a saved empty address book.
CREATE TABLE IF NOT EXISTS addressbook_meta (
    id SMALLINT PRIMARY KEY DEFAULT 1,
    schema_version VARCHAR(20) NOT NULL,
    students INTEGER NOT NULL,
    lessons INTEGER NOT NULL,
    saved_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),

    CONSTRAINT single_row CHECK (id = 1)
);
`

const migration003Down = `
DROP TABLE IF EXISTS addressbook_meta;
`
