package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"crop-exchange/internal/config"
	"crop-exchange/internal/models"
)

type ResourceService struct {
	db     *sql.DB
	logger zerolog.Logger
	users  *UserService
}

func NewResourceService(db *sql.DB, logger zerolog.Logger, users *UserService) *ResourceService {
	return &ResourceService{
		db:     db,
		logger: logger,
		users:  users,
	}
}

const resourceColumns = "id, title, image_url, price, price_type, availability, `condition`, location, description, owner_id, owner_name, version, created_at"

func (s *ResourceService) Create(ownerID int, req *models.CreateResourceRequest) (*models.Resource, error) {
	user, err := s.users.GetUserByID(ownerID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role != string(models.RoleFarmer) {
		return nil, fmt.Errorf("%w: only farmers can add resources", ErrForbidden)
	}

	if req.Title == "" || req.Price == "" || req.Availability == "" || req.Location == "" {
		return nil, invalidInput("title, price, availability, and location are required")
	}
	if !models.ValidPriceType(req.PriceType) {
		return nil, invalidInput("priceType must be per-day, per-week, per-month, or fixed")
	}
	if !models.ValidCondition(req.Condition) {
		return nil, invalidInput("condition must be New, Excellent, Good, Fair, or Poor")
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = config.DefaultResourceImage
	}

	result, err := s.db.Exec(
		"INSERT INTO resources (title, image_url, price, price_type, availability, `condition`, location, description, owner_id, owner_name) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		req.Title, imageURL, req.Price, req.PriceType, req.Availability, req.Condition,
		req.Location, req.Description, user.ID, user.Name,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating resource")
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	resourceID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get resource ID: %w", err)
	}

	resource, err := s.GetByID(int(resourceID))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("resource_id", resource.ID).Int("owner_id", user.ID).Msg("Resource created")
	return resource, nil
}

func (s *ResourceService) GetByID(resourceID int) (*models.Resource, error) {
	var resource models.Resource
	var description sql.NullString

	err := s.db.QueryRow(
		"SELECT "+resourceColumns+" FROM resources WHERE id = ?",
		resourceID,
	).Scan(
		&resource.ID, &resource.Title, &resource.ImageURL, &resource.Price,
		&resource.PriceType, &resource.Availability, &resource.Condition,
		&resource.Location, &description, &resource.OwnerID, &resource.OwnerName,
		&resource.Version, &resource.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Int("resource_id", resourceID).Msg("Error fetching resource")
		return nil, fmt.Errorf("database error: %w", err)
	}

	resource.Description = description.String
	return &resource, nil
}

func (s *ResourceService) ListAll() ([]*models.Resource, error) {
	return s.list("SELECT " + resourceColumns + " FROM resources ORDER BY created_at DESC, id DESC")
}

func (s *ResourceService) ListByOwner(ownerID int) ([]*models.Resource, error) {
	return s.list(
		"SELECT "+resourceColumns+" FROM resources WHERE owner_id = ? ORDER BY created_at DESC, id DESC",
		ownerID,
	)
}

func (s *ResourceService) list(query string, args ...interface{}) ([]*models.Resource, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching resources")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	resources := []*models.Resource{}
	for rows.Next() {
		var resource models.Resource
		var description sql.NullString

		err := rows.Scan(
			&resource.ID, &resource.Title, &resource.ImageURL, &resource.Price,
			&resource.PriceType, &resource.Availability, &resource.Condition,
			&resource.Location, &description, &resource.OwnerID, &resource.OwnerName,
			&resource.Version, &resource.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning resource: %w", err)
		}

		resource.Description = description.String
		resources = append(resources, &resource)
	}

	return resources, rows.Err()
}

func (s *ResourceService) Update(resourceID, callerID int, req *models.UpdateResourceRequest) (*models.Resource, error) {
	resource, err := s.GetByID(resourceID)
	if err != nil {
		return nil, err
	}

	if resource.OwnerID != callerID {
		return nil, fmt.Errorf("%w: user not authorized to update this resource", ErrForbidden)
	}

	if req.PriceType != "" && !models.ValidPriceType(req.PriceType) {
		return nil, invalidInput("priceType must be per-day, per-week, per-month, or fixed")
	}
	if req.Condition != "" && !models.ValidCondition(req.Condition) {
		return nil, invalidInput("condition must be New, Excellent, Good, Fair, or Poor")
	}

	req.Apply(resource)

	result, err := s.db.Exec(
		"UPDATE resources SET title = ?, image_url = ?, price = ?, price_type = ?, availability = ?, `condition` = ?, location = ?, description = ?, version = version + 1 WHERE id = ? AND version = ?",
		resource.Title, resource.ImageURL, resource.Price, resource.PriceType,
		resource.Availability, resource.Condition, resource.Location, resource.Description,
		resource.ID, resource.Version,
	)
	if err != nil {
		s.logger.Error().Err(err).Int("resource_id", resourceID).Msg("Error updating resource")
		return nil, fmt.Errorf("failed to update resource: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: resource was modified concurrently", ErrConflict)
	}

	s.logger.Info().Int("resource_id", resourceID).Int("owner_id", callerID).Msg("Resource updated")
	return s.GetByID(resourceID)
}

// Delete removes the resource row only. Requests that reference it keep
// their denormalized title and go stale.
func (s *ResourceService) Delete(resourceID, callerID int) error {
	resource, err := s.GetByID(resourceID)
	if err != nil {
		return err
	}

	if resource.OwnerID != callerID {
		return fmt.Errorf("%w: user not authorized to delete this resource", ErrForbidden)
	}

	_, err = s.db.Exec("DELETE FROM resources WHERE id = ?", resourceID)
	if err != nil {
		s.logger.Error().Err(err).Int("resource_id", resourceID).Msg("Error deleting resource")
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	s.logger.Info().Int("resource_id", resourceID).Int("owner_id", callerID).Msg("Resource deleted")
	return nil
}
