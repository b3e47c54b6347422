package portfolio

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/studio-service/internal/domain"
	"github.com/m04kA/studio-service/pkg/dbmetrics"
	"github.com/m04kA/studio-service/pkg/psqlbuilder"
)

type DBExecutor = dbmetrics.DBExecutor

var projectColumns = []string{
	"p.id",
	"p.title",
	"p.slug",
	"p.category_id",
	"c.name",
	"p.client",
	"p.year",
	"p.duration",
	"p.description",
	"p.thumbnail",
	"p.video_url",
	"p.video_file",
	"p.featured",
	"p.sort_order",
	"p.created_at",
	"p.updated_at",
}

// Repository репозиторий портфолио и заявок с формы обратной связи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория портфолио
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListCategories возвращает категории в порядке (sort_order, name)
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.PortfolioCategory, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "slug", "sort_order").
		From("portfolio_categories").
		OrderBy("sort_order ASC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.PortfolioCategory, 0)
	for rows.Next() {
		var c domain.PortfolioCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ListProjects возвращает проекты: сначала избранные, затем новые по году
func (r *Repository) ListProjects(ctx context.Context, filter domain.ProjectsFilter) ([]*domain.Project, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := applyFilter(selectProjects(), filter).
		OrderBy("p.featured DESC", "p.year DESC", "p.sort_order ASC")

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProjects - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProjects - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	projects := make([]*domain.Project, 0)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListProjects - scan row: %v", ErrScanRow, err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProjects - rows error: %v", ErrScanRow, err)
	}

	return projects, nil
}

// CountProjects возвращает количество проектов под фильтром
func (r *Repository) CountProjects(ctx context.Context, filter domain.ProjectsFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(
		psqlbuilder.Select("COUNT(*)").
			From("projects p").
			LeftJoin("portfolio_categories c ON c.id = p.category_id"),
		filter,
	).ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountProjects - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountProjects - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetProjectBySlug получает проект с изображениями, участниками и оборудованием
func (r *Repository) GetProjectBySlug(ctx context.Context, slug string) (*domain.Project, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectProjects().
		Where(squirrel.Eq{"p.slug": slug}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetProjectBySlug - build select query: %v", ErrBuildQuery, err)
	}

	project, err := scanProject(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProjectBySlug - scan project: %v", ErrScanRow, err)
	}

	if project.Images, err = r.getImages(ctx, project.ID); err != nil {
		return nil, err
	}
	if project.Credits, err = r.getCredits(ctx, project.ID); err != nil {
		return nil, err
	}
	if project.Equipment, err = r.getEquipment(ctx, project.ID); err != nil {
		return nil, err
	}

	return project, nil
}

// CreateContactSubmission сохраняет сообщение с формы обратной связи
func (r *Repository) CreateContactSubmission(ctx context.Context, s *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("contact_submissions").
		Columns("name", "email", "phone", "project_type", "budget", "message").
		Values(s.Name, s.Email, s.Phone, s.ProjectType, s.Budget, s.Message).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateContactSubmission - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateContactSubmission - execute insert: %v", ErrExecQuery, err)
	}
	s.CreatedAt = createdAt.Time

	return s, nil
}

func (r *Repository) getImages(ctx context.Context, projectID int64) ([]domain.ProjectImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "image", "caption", "is_behind_the_scenes", "sort_order").
		From("project_images").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getImages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getImages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]domain.ProjectImage, 0)
	for rows.Next() {
		var img domain.ProjectImage
		if err := rows.Scan(&img.ID, &img.Image, &img.Caption, &img.IsBehindTheScenes, &img.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: getImages - scan row: %v", ErrScanRow, err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getImages - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

func (r *Repository) getCredits(ctx context.Context, projectID int64) ([]domain.Credit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("role", "name").
		From("project_credits").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("sort_order ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getCredits - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getCredits - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	credits := make([]domain.Credit, 0)
	for rows.Next() {
		var c domain.Credit
		if err := rows.Scan(&c.Role, &c.Name); err != nil {
			return nil, fmt.Errorf("%w: getCredits - scan row: %v", ErrScanRow, err)
		}
		credits = append(credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getCredits - rows error: %v", ErrScanRow, err)
	}

	return credits, nil
}

func (r *Repository) getEquipment(ctx context.Context, projectID int64) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("e.name").
		From("project_equipment pe").
		Join("equipment e ON e.id = pe.equipment_id").
		Where(squirrel.Eq{"pe.project_id": projectID}).
		OrderBy("e.name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getEquipment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getEquipment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	equipment := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: getEquipment - scan row: %v", ErrScanRow, err)
		}
		equipment = append(equipment, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getEquipment - rows error: %v", ErrScanRow, err)
	}

	return equipment, nil
}

func selectProjects() squirrel.SelectBuilder {
	return psqlbuilder.Select(projectColumns...).
		From("projects p").
		LeftJoin("portfolio_categories c ON c.id = p.category_id")
}

func applyFilter(builder squirrel.SelectBuilder, filter domain.ProjectsFilter) squirrel.SelectBuilder {
	if filter.CategorySlug != nil {
		builder = builder.Where(squirrel.Eq{"c.slug": *filter.CategorySlug})
	}
	if filter.Featured != nil {
		builder = builder.Where(squirrel.Eq{"p.featured": *filter.Featured})
	}
	return builder
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&p.CategoryID,
		&p.CategoryName,
		&p.Client,
		&p.Year,
		&p.Duration,
		&p.Description,
		&p.Thumbnail,
		&p.VideoURL,
		&p.VideoFile,
		&p.Featured,
		&p.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
