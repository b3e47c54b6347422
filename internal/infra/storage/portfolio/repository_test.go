package portfolio

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func projectRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "slug", "category_id", "cname", "client", "year", "duration", "description",
		"thumbnail", "video_url", "video_file", "featured", "sort_order", "created_at", "updated_at",
	})
}

func TestRepository_GetProjectBySlug_LoadsRelations(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE p.slug = $1")).
		WithArgs("northern-lights").
		WillReturnRows(projectRows().AddRow(
			5, "Northern Lights", "northern-lights", 1, "Music videos", "Aurora", 2024, "4:32", "desc",
			"thumbs/nl.jpg", "https://vimeo.com/1", "", true, 0, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM project_images WHERE project_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "image", "caption", "is_behind_the_scenes", "sort_order"}).
			AddRow(1, "g1.jpg", "", false, 0).
			AddRow(2, "bts.jpg", "On set", true, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM project_credits WHERE project_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"role", "name"}).AddRow("Director", "Jane Doe"))
	mock.ExpectQuery(regexp.QuoteMeta("FROM project_equipment pe JOIN equipment e ON e.id = pe.equipment_id WHERE pe.project_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("ARRI Alexa Mini"))

	project, err := repo.GetProjectBySlug(context.Background(), "northern-lights")

	require.NoError(t, err)
	assert.Equal(t, "Music videos", *project.CategoryName)
	assert.Len(t, project.GalleryImages(), 1)
	assert.Len(t, project.BehindTheScenes(), 1)
	assert.Equal(t, []domain.Credit{{Role: "Director", Name: "Jane Doe"}}, project.Credits)
	assert.Equal(t, []string{"ARRI Alexa Mini"}, project.Equipment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetProjectBySlug_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM projects p").WillReturnRows(projectRows())

	_, err := repo.GetProjectBySlug(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestRepository_CreateContactSubmission(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_submissions (name,email,phone,project_type,budget,message) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at")).
		WithArgs("Jane", "jane@example.com", "", "Music video", "5k", "Hello").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(8, now))

	s, err := repo.CreateContactSubmission(context.Background(), &domain.ContactSubmission{
		Name:        "Jane",
		Email:       "jane@example.com",
		ProjectType: "Music video",
		Budget:      "5k",
		Message:     "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), s.ID)
}
