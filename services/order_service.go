package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrInvalidOrderLines = errors.New("invalid order lines")
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoDocuments       = errors.New("no documents to save")
	ErrInvalidDocuments  = errors.New("invalid documents")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrBadDocumentType   = errors.New("invalid document type")
)

// InvalidProductsError names every missing or inactive product id so the
// caller can tell which lines sank the request.
type InvalidProductsError struct {
	IDs []uint
}

func (e *InvalidProductsError) Error() string {
	parts := make([]string, 0, len(e.IDs))
	for _, id := range e.IDs {
		parts = append(parts, strconv.FormatUint(uint64(id), 10))
	}
	return fmt.Sprintf("invalid or unavailable products: %s", strings.Join(parts, ", "))
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	CartRepo    *repository.CartRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, pr *repository.ProductRepository, cr *repository.CartRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, ProductRepo: pr, CartRepo: cr}
}

// ----- DTOs -----

type OrderLineIn struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
	// accepted from older clients but never trusted; prices always come
	// from the product records
	UnitPrice float64 `json:"unitPrice"`
}

type CreateOrderIn struct {
	Items           []OrderLineIn `json:"items"`
	ShippingAddress string        `json:"shippingAddress"`
	Notes           string        `json:"notes"`
}

type DraftOrderIn struct {
	CreateOrderIn
	CheckoutData map[string]any `json:"checkoutData"`
}

type orderLine struct {
	productID uint
	quantity  int
	unitPrice float64
}

// priceLines validates the request and recomputes every unit price from
// the live product rows. Whole-or-nothing: one bad id fails the lot.
func (s *OrderService) priceLines(items []OrderLineIn) ([]orderLine, float64, error) {
	if len(items) == 0 {
		return nil, 0, ErrEmptyOrder
	}
	for _, it := range items {
		if it.ProductID == 0 || it.Quantity <= 0 {
			return nil, 0, ErrInvalidOrderLines
		}
	}

	seen := make(map[uint]bool, len(items))
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if !seen[it.ProductID] {
			seen[it.ProductID] = true
			ids = append(ids, it.ProductID)
		}
	}

	products, err := s.ProductRepo.FindActiveByIDs(ids)
	if err != nil {
		return nil, 0, err
	}
	byID := make(map[uint]*entity.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var missing []uint
	for _, id := range ids {
		if byID[id] == nil {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, 0, &InvalidProductsError{IDs: missing}
	}

	var total float64
	lines := make([]orderLine, 0, len(items))
	for _, it := range items {
		p := byID[it.ProductID]
		total += p.Price * float64(it.Quantity)
		lines = append(lines, orderLine{productID: p.ID, quantity: it.Quantity, unitPrice: p.Price})
	}
	return lines, total, nil
}

// Create places an immediate order: status processing, cart cleared.
func (s *OrderService) Create(userID uint, in *CreateOrderIn) (*entity.Order, error) {
	return s.create(userID, in, entity.OrderStatusProcessing, nil, true)
}

// CreateDraft saves an order to resume later: status pending, checkout
// form snapshot attached, cart untouched.
func (s *OrderService) CreateDraft(userID uint, in *DraftOrderIn) (*entity.Order, error) {
	var snapshot datatypes.JSON
	if in.CheckoutData != nil {
		raw, err := json.Marshal(in.CheckoutData)
		if err != nil {
			return nil, ErrInvalidOrderLines
		}
		snapshot = datatypes.JSON(raw)
	}
	return s.create(userID, &in.CreateOrderIn, entity.OrderStatusPending, snapshot, false)
}

func (s *OrderService) create(userID uint, in *CreateOrderIn, status entity.OrderStatus, snapshot datatypes.JSON, clearCart bool) (*entity.Order, error) {
	lines, total, err := s.priceLines(in.Items)
	if err != nil {
		return nil, err
	}

	uid := userID
	order := entity.Order{
		UserID:          &uid,
		Total:           total,
		Status:          status,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		CheckoutData:    snapshot,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: l.productID,
				Quantity:  l.quantity,
				UnitPrice: l.unitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		if clearCart {
			return s.CartRepo.ClearItems(tx, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.DetailForUser(userID, order.ID)
}

// ----- List & detail -----

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrderForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	docs, err := s.Repo.ListDocuments(o.ID)
	if err != nil {
		return nil, err
	}
	o.Documents = docs
	return o, nil
}

// ----- Documents -----

type DocumentIn struct {
	Type       string `json:"type"`
	FileName   string `json:"fileName"`
	MimeType   string `json:"mimeType"`
	DataBase64 string `json:"dataBase64"`
}

// SaveDocuments replaces any prior document of each submitted type for
// the order. At most one active document per (order, type).
func (s *OrderService) SaveDocuments(userID, orderID uint, docs []DocumentIn) ([]entity.OrderDocument, error) {
	if len(docs) == 0 {
		return nil, ErrNoDocuments
	}

	if _, err := s.Repo.GetOrderForUser(userID, orderID); err != nil {
		return nil, ErrOrderNotFound
	}

	normalized := make([]entity.OrderDocument, 0, len(docs))
	for _, d := range docs {
		if !entity.ValidDocumentType(d.Type) || d.FileName == "" || d.DataBase64 == "" {
			continue
		}
		mime := d.MimeType
		if mime == "" {
			mime = "application/pdf"
		}
		normalized = append(normalized, entity.OrderDocument{
			Type:       d.Type,
			FileName:   truncate(d.FileName, 160),
			MimeType:   truncate(mime, 80),
			DataBase64: d.DataBase64,
		})
	}
	if len(normalized) == 0 {
		return nil, ErrInvalidDocuments
	}

	seen := make(map[string]bool, 2)
	types := make([]string, 0, 2)
	for _, d := range normalized {
		if !seen[d.Type] {
			seen[d.Type] = true
			types = append(types, d.Type)
		}
	}

	if err := s.Repo.ReplaceDocuments(orderID, types, normalized); err != nil {
		return nil, err
	}
	return s.Repo.ListDocuments(orderID)
}

func (s *OrderService) GetDocument(userID, orderID uint, docType string) (*entity.OrderDocument, error) {
	if !entity.ValidDocumentType(docType) {
		return nil, ErrBadDocumentType
	}
	if _, err := s.Repo.GetOrderForUser(userID, orderID); err != nil {
		return nil, ErrOrderNotFound
	}
	doc, err := s.Repo.GetDocumentWithData(orderID, docType)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	return doc, err
}
