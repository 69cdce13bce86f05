package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tutorhub/tutorhub/internal/domain/addressbook"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/infrastructure/persistence/codec"
	"github.com/tutorhub/tutorhub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADDRESS BOOK REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// SnapshotRepository stores whole address books in the students, assignments
// and lessons tables. It implements addressbook.Repository and
// addressbook.Mirror.
type SnapshotRepository struct {
	conn *Connection
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(conn *Connection) *SnapshotRepository {
	return &SnapshotRepository{conn: conn}
}

// Name identifies the repository in logs.
func (r *SnapshotRepository) Name() string { return "postgres" }

// ─────────────────────────────────────────────────────────────────────────────
// Save
// ─────────────────────────────────────────────────────────────────────────────

// Save replaces every stored row with the contents of src in one transaction.
// Errors that cannot succeed on a retry are marked retry.Permanent.
func (r *SnapshotRepository) Save(ctx context.Context, src addressbook.ReadOnly) error {
	doc := codec.FromBook(src)

	err := r.conn.WithTx(ctx, DefaultTxOptions(), func(tx pgx.Tx) error {
		// Assignments and lessons go with their students.
		if _, err := tx.Exec(ctx, `DELETE FROM students`); err != nil {
			return fmt.Errorf("failed to clear students: %w", err)
		}

		batch := &pgx.Batch{}
		for pos, s := range doc.Students {
			batch.Queue(`
				INSERT INTO students (name, phone, email, address, subject, tags, position)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, s.Name, s.Phone, s.Email, s.Address, s.Subject, s.Tags, pos)

			for apos, a := range s.Assignments {
				var due *string
				if a.DueDate != "" {
					due = &a.DueDate
				}
				batch.Queue(`
					INSERT INTO assignments (student_name, name, due_date, completed, position)
					VALUES ($1, $2, to_date($3, 'DD-MM-YYYY'), $4, $5)
				`, s.Name, a.Name, due, a.Completed, apos)
			}
		}
		for pos, l := range doc.Lessons {
			batch.Queue(`
				INSERT INTO lessons (student_name, date, time, subject, position)
				VALUES ($1, to_date($2, 'DD-MM-YYYY'), $3::time, $4, $5)
			`, l.StudentName, l.Date, l.Time, l.Subject, pos)
		}
		batch.Queue(`
			INSERT INTO addressbook_meta (id, schema_version, students, lessons, saved_at)
			VALUES (1, $1, $2, $3, NOW())
			ON CONFLICT (id) DO UPDATE SET
				schema_version = EXCLUDED.schema_version,
				students = EXCLUDED.students,
				lessons = EXCLUDED.lessons,
				saved_at = EXCLUDED.saved_at
		`, doc.SchemaVersion, len(doc.Students), len(doc.Lessons))

		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
		return br.Close()
	})
	if err != nil {
		if IsUniqueViolation(err) || !IsTransient(err) {
			return retry.Permanent(err)
		}
		return err
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Load
// ─────────────────────────────────────────────────────────────────────────────

// Load reads the stored rows back into an address book. Returns
// addressbook.ErrNoData if nothing was ever saved.
func (r *SnapshotRepository) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	var doc codec.Document

	err := r.conn.WithTx(ctx, ReadOnlyTxOptions(), func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `SELECT schema_version FROM addressbook_meta WHERE id = 1`).
			Scan(&doc.SchemaVersion)
		if err != nil {
			return err
		}

		if doc.Students, err = loadStudents(ctx, tx); err != nil {
			return err
		}
		doc.Lessons, err = loadLessons(ctx, tx)
		return err
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, addressbook.ErrNoData
	}
	if err != nil {
		return nil, shared.WrapError("postgres", "Load", shared.ErrStorage,
			"Could not read the address book from the database", err)
	}

	book, err := doc.ToAddressBook()
	if err != nil {
		return nil, shared.WrapError("postgres", "Load", shared.ErrStorage,
			"Database contains invalid entries: "+shared.UserMessage(err), err)
	}
	return book, nil
}

func loadStudents(ctx context.Context, tx pgx.Tx) ([]codec.StudentRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT name, phone, email, address, subject, tags
		FROM students
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer rows.Close()

	var (
		students []codec.StudentRecord
		index    = make(map[string]int)
	)
	for rows.Next() {
		var s codec.StudentRecord
		if err := rows.Scan(&s.Name, &s.Phone, &s.Email, &s.Address, &s.Subject, &s.Tags); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		index[s.Name] = len(students)
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	arows, err := tx.Query(ctx, `
		SELECT student_name, name, COALESCE(to_char(due_date, 'DD-MM-YYYY'), ''), completed
		FROM assignments
		ORDER BY student_name, position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer arows.Close()

	for arows.Next() {
		var (
			owner string
			a     codec.AssignmentRecord
		)
		if err := arows.Scan(&owner, &a.Name, &a.DueDate, &a.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		i, ok := index[owner]
		if !ok {
			continue
		}
		students[i].Assignments = append(students[i].Assignments, a)
	}
	return students, arows.Err()
}

func loadLessons(ctx context.Context, tx pgx.Tx) ([]codec.LessonRecord, error) {
	rows, err := tx.Query(ctx, `
		SELECT student_name, to_char(date, 'DD-MM-YYYY'), to_char(time, 'HH24:MI'), subject
		FROM lessons
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []codec.LessonRecord
	for rows.Next() {
		var l codec.LessonRecord
		if err := rows.Scan(&l.StudentName, &l.Date, &l.Time, &l.Subject); err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}
