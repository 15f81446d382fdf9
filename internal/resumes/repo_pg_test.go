package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newPGRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoCreateInsertsColumnsAndDocument(t *testing.T) {
	repo, mock := newPGRepo(t)

	now := time.Now().UTC()
	res := NewDefault("user-1", "My Resume")
	res.ID = "resume-1"
	res.CreatedAt = now
	res.UpdatedAt = now

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(res.ID, res.OwnerID, res.Title, sqlmock.AnyArg(), res.CreatedAt, res.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetOwnedRestoresColumnsOverPayload(t *testing.T) {
	repo, mock := newPGRepo(t)

	now := time.Now().UTC().Truncate(time.Second)
	res := NewDefault("user-1", "Stale Title")
	res.ID = "stale-id"
	res.ProfileInfo.FullName = "Ada Lovelace"
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "data", "created_at", "updated_at"}).
		AddRow("resume-1", "user-1", "Fresh Title", data, now, now)
	mock.ExpectQuery("SELECT id, owner_id, title, data, created_at, updated_at").
		WithArgs("resume-1", "user-1").
		WillReturnRows(rows)

	got, err := repo.GetOwned(context.Background(), "resume-1", "user-1")
	if err != nil {
		t.Fatalf("GetOwned: %v", err)
	}
	if got.ID != "resume-1" || got.Title != "Fresh Title" {
		t.Fatalf("expected column values to win, got id=%q title=%q", got.ID, got.Title)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("expected column updatedAt, got %v", got.UpdatedAt)
	}
	if got.ProfileInfo.FullName != "Ada Lovelace" {
		t.Fatalf("expected nested payload preserved, got %+v", got.ProfileInfo)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetOwnedMapsNoRowsToNotFound(t *testing.T) {
	repo, mock := newPGRepo(t)

	mock.ExpectQuery("SELECT id, owner_id, title, data, created_at, updated_at").
		WithArgs("resume-1", "other-user").
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "title", "data", "created_at", "updated_at"}))

	if _, err := repo.GetOwned(context.Background(), "resume-1", "other-user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateScopesOnOwner(t *testing.T) {
	repo, mock := newPGRepo(t)

	res := NewDefault("user-1", "My Resume")
	res.ID = "resume-1"
	res.UpdatedAt = time.Now().UTC()

	mock.ExpectExec("UPDATE resumes").
		WithArgs(res.Title, sqlmock.AnyArg(), res.UpdatedAt, res.ID, res.OwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), res); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpdateZeroRowsIsNotFound(t *testing.T) {
	repo, mock := newPGRepo(t)

	res := NewDefault("other-user", "My Resume")
	res.ID = "resume-1"

	mock.ExpectExec("UPDATE resumes").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Update(context.Background(), res); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteZeroRowsIsNotFound(t *testing.T) {
	repo, mock := newPGRepo(t)

	mock.ExpectExec("DELETE FROM resumes").
		WithArgs("resume-1", "other-user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "resume-1", "other-user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoListByOwnerScansAllRows(t *testing.T) {
	repo, mock := newPGRepo(t)

	now := time.Now().UTC().Truncate(time.Second)
	a, _ := json.Marshal(NewDefault("user-1", "A"))
	b, _ := json.Marshal(NewDefault("user-1", "B"))

	rows := sqlmock.NewRows([]string{"id", "owner_id", "title", "data", "created_at", "updated_at"}).
		AddRow("r2", "user-1", "B", b, now, now.Add(time.Minute)).
		AddRow("r1", "user-1", "A", a, now, now)
	mock.ExpectQuery("SELECT id, owner_id, title, data, created_at, updated_at").
		WithArgs("user-1").
		WillReturnRows(rows)

	out, err := repo.ListByOwner(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out))
	}
	if out[0].ID != "r2" || out[1].ID != "r1" {
		t.Fatalf("expected rows in query order, got %q then %q", out[0].ID, out[1].ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
