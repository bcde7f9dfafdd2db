package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"crop-exchange/internal/models"
)

type RequestService struct {
	db        *sql.DB
	logger    zerolog.Logger
	users     *UserService
	resources *ResourceService
}

func NewRequestService(db *sql.DB, logger zerolog.Logger, users *UserService, resources *ResourceService) *RequestService {
	return &RequestService{
		db:        db,
		logger:    logger,
		users:     users,
		resources: resources,
	}
}

const requestColumns = "id, resource_id, resource_title, requester_id, requester_name, owner_id, owner_name, message, start_date, end_date, payment_type, payment_details, status, version, created_at"

// Create records a rental proposal. Owner identity is always derived from
// the stored resource row, never taken from the caller.
func (s *RequestService) Create(requesterID int, input *models.CreateResourceRequestInput) (*models.ResourceRequest, error) {
	requester, err := s.users.GetUserByID(requesterID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if requester.Role != string(models.RoleFarmer) {
		return nil, fmt.Errorf("%w: only farmers can request resources", ErrForbidden)
	}

	resource, err := s.resources.GetByID(input.ResourceID)
	if err != nil {
		return nil, err
	}

	if resource.OwnerID == requesterID {
		return nil, invalidInput("cannot request your own resource")
	}

	if input.Message == "" {
		return nil, invalidInput("message is required")
	}
	if !models.ValidPaymentType(input.PaymentType) {
		return nil, invalidInput("paymentType must be money or barter")
	}
	if input.PaymentDetails == "" {
		return nil, invalidInput("paymentDetails is required")
	}

	startDate, err := models.ParseRequestDate(input.StartDate)
	if err != nil {
		return nil, invalidInput("startDate must be a valid date")
	}
	endDate, err := models.ParseRequestDate(input.EndDate)
	if err != nil {
		return nil, invalidInput("endDate must be a valid date")
	}
	if endDate.Before(startDate) {
		return nil, invalidInput("endDate must not be before startDate")
	}

	result, err := s.db.Exec(
		"INSERT INTO resource_requests (resource_id, resource_title, requester_id, requester_name, owner_id, owner_name, message, start_date, end_date, payment_type, payment_details, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		resource.ID, resource.Title, requester.ID, requester.Name, resource.OwnerID, resource.OwnerName,
		input.Message, startDate, endDate, input.PaymentType, input.PaymentDetails, string(models.RequestStatusPending),
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating resource request")
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get request ID: %w", err)
	}

	request, err := s.GetByID(int(requestID))
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("request_id", request.ID).
		Int("resource_id", resource.ID).
		Int("requester_id", requester.ID).
		Int("owner_id", resource.OwnerID).
		Msg("Resource request created")

	return request, nil
}

func (s *RequestService) GetByID(requestID int) (*models.ResourceRequest, error) {
	var request models.ResourceRequest

	err := s.db.QueryRow(
		"SELECT "+requestColumns+" FROM resource_requests WHERE id = ?",
		requestID,
	).Scan(
		&request.ID, &request.ResourceID, &request.ResourceTitle,
		&request.RequesterID, &request.RequesterName, &request.OwnerID, &request.OwnerName,
		&request.Message, &request.StartDate, &request.EndDate,
		&request.PaymentType, &request.PaymentDetails, &request.Status,
		&request.Version, &request.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Int("request_id", requestID).Msg("Error fetching request")
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &request, nil
}

func (s *RequestService) ListReceived(ownerID int) ([]*models.ResourceRequest, error) {
	return s.list(
		"SELECT "+requestColumns+" FROM resource_requests WHERE owner_id = ? ORDER BY created_at DESC, id DESC",
		ownerID,
	)
}

func (s *RequestService) ListSent(requesterID int) ([]*models.ResourceRequest, error) {
	return s.list(
		"SELECT "+requestColumns+" FROM resource_requests WHERE requester_id = ? ORDER BY created_at DESC, id DESC",
		requesterID,
	)
}

func (s *RequestService) list(query string, args ...interface{}) ([]*models.ResourceRequest, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching requests")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	requests := []*models.ResourceRequest{}
	for rows.Next() {
		var request models.ResourceRequest

		err := rows.Scan(
			&request.ID, &request.ResourceID, &request.ResourceTitle,
			&request.RequesterID, &request.RequesterName, &request.OwnerID, &request.OwnerName,
			&request.Message, &request.StartDate, &request.EndDate,
			&request.PaymentType, &request.PaymentDetails, &request.Status,
			&request.Version, &request.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning request: %w", err)
		}

		requests = append(requests, &request)
	}

	return requests, rows.Err()
}

// UpdateStatus moves a request through its lifecycle. Only the owner may
// transition it, pending is the only state with outgoing transitions, and
// writing the current status back is a no-op.
func (s *RequestService) UpdateStatus(requestID, callerID int, status string) (*models.ResourceRequest, error) {
	request, err := s.GetByID(requestID)
	if err != nil {
		return nil, err
	}

	if request.OwnerID != callerID {
		return nil, fmt.Errorf("%w: user not authorized to update this request", ErrForbidden)
	}

	if !models.ValidRequestStatus(status) {
		return nil, invalidInput("invalid status")
	}

	from := models.RequestStatus(request.Status)
	to := models.RequestStatus(status)

	if from == to {
		return request, nil
	}

	if !models.CanTransition(from, to) {
		return nil, invalidInput(fmt.Sprintf("cannot change status of a %s request", request.Status))
	}

	result, err := s.db.Exec(
		"UPDATE resource_requests SET status = ?, version = version + 1 WHERE id = ? AND version = ?",
		status, request.ID, request.Version,
	)
	if err != nil {
		s.logger.Error().Err(err).Int("request_id", requestID).Msg("Error updating request status")
		return nil, fmt.Errorf("failed to update request: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: request was modified concurrently", ErrConflict)
	}

	s.logger.Info().
		Int("request_id", requestID).
		Str("from", request.Status).
		Str("to", status).
		Msg("Request status updated")

	return s.GetByID(requestID)
}
