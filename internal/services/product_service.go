package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"crop-exchange/internal/config"
	"crop-exchange/internal/models"
)

type ProductService struct {
	db     *sql.DB
	logger zerolog.Logger
	users  *UserService
}

func NewProductService(db *sql.DB, logger zerolog.Logger, users *UserService) *ProductService {
	return &ProductService{
		db:     db,
		logger: logger,
		users:  users,
	}
}

func (s *ProductService) Create(sellerID int, req *models.CreateProductRequest) (*models.Product, error) {
	user, err := s.users.GetUserByID(sellerID)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if user.Role != string(models.RoleFarmer) {
		return nil, fmt.Errorf("%w: only farmers can add products", ErrForbidden)
	}

	if req.Title == "" || req.Price == "" || req.Quantity == "" || req.Unit == "" {
		return nil, invalidInput("title, price, quantity, and unit are required")
	}
	if !models.ValidTradeOption(req.TradeOption) {
		return nil, invalidInput("tradeOption must be sell, barter, or both")
	}

	imageURL := req.ImageURL
	if imageURL == "" {
		imageURL = config.DefaultProductImage
	}

	result, err := s.db.Exec(
		"INSERT INTO products (title, description, price, quantity, unit, trade_option, image_url, seller_id, seller_name) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		req.Title, req.Description, req.Price, req.Quantity, req.Unit, req.TradeOption, imageURL, user.ID, user.Name,
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	productID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get product ID: %w", err)
	}

	product, err := s.GetByID(int(productID))
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("product_id", product.ID).Int("seller_id", user.ID).Msg("Product created")
	return product, nil
}

func (s *ProductService) GetByID(productID int) (*models.Product, error) {
	var product models.Product
	var description sql.NullString

	err := s.db.QueryRow(
		"SELECT id, title, description, price, quantity, unit, trade_option, image_url, seller_id, seller_name, version, created_at FROM products WHERE id = ?",
		productID,
	).Scan(
		&product.ID, &product.Title, &description, &product.Price, &product.Quantity,
		&product.Unit, &product.TradeOption, &product.ImageURL, &product.SellerID,
		&product.SellerName, &product.Version, &product.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("Error fetching product")
		return nil, fmt.Errorf("database error: %w", err)
	}

	product.Description = description.String
	return &product, nil
}

func (s *ProductService) ListAll() ([]*models.Product, error) {
	return s.list("SELECT id, title, description, price, quantity, unit, trade_option, image_url, seller_id, seller_name, version, created_at FROM products ORDER BY created_at DESC, id DESC")
}

func (s *ProductService) ListBySeller(sellerID int) ([]*models.Product, error) {
	return s.list(
		"SELECT id, title, description, price, quantity, unit, trade_option, image_url, seller_id, seller_name, version, created_at FROM products WHERE seller_id = ? ORDER BY created_at DESC, id DESC",
		sellerID,
	)
}

func (s *ProductService) list(query string, args ...interface{}) ([]*models.Product, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error fetching products")
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var product models.Product
		var description sql.NullString

		err := rows.Scan(
			&product.ID, &product.Title, &description, &product.Price, &product.Quantity,
			&product.Unit, &product.TradeOption, &product.ImageURL, &product.SellerID,
			&product.SellerName, &product.Version, &product.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}

		product.Description = description.String
		products = append(products, &product)
	}

	return products, rows.Err()
}

func (s *ProductService) Update(productID, callerID int, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetByID(productID)
	if err != nil {
		return nil, err
	}

	if product.SellerID != callerID {
		return nil, fmt.Errorf("%w: user not authorized to update this product", ErrForbidden)
	}

	if req.TradeOption != "" && !models.ValidTradeOption(req.TradeOption) {
		return nil, invalidInput("tradeOption must be sell, barter, or both")
	}

	req.Apply(product)

	result, err := s.db.Exec(
		"UPDATE products SET title = ?, description = ?, price = ?, quantity = ?, unit = ?, trade_option = ?, image_url = ?, version = version + 1 WHERE id = ? AND version = ?",
		product.Title, product.Description, product.Price, product.Quantity, product.Unit,
		product.TradeOption, product.ImageURL, product.ID, product.Version,
	)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("Error updating product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: product was modified concurrently", ErrConflict)
	}

	s.logger.Info().Int("product_id", productID).Int("seller_id", callerID).Msg("Product updated")
	return s.GetByID(productID)
}

func (s *ProductService) Delete(productID, callerID int) error {
	product, err := s.GetByID(productID)
	if err != nil {
		return err
	}

	if product.SellerID != callerID {
		return fmt.Errorf("%w: user not authorized to delete this product", ErrForbidden)
	}

	_, err = s.db.Exec("DELETE FROM products WHERE id = ?", productID)
	if err != nil {
		s.logger.Error().Err(err).Int("product_id", productID).Msg("Error deleting product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info().Int("product_id", productID).Int("seller_id", callerID).Msg("Product deleted")
	return nil
}
