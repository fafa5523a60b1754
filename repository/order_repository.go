package repository

import (
	"github.com/MarcoT95/static/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForUser(userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND user_id = ?", orderID, userID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("Product").Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// UpdateStatusGuard flips status only when the row still holds the
// expected one, so concurrent transitions cannot double-apply.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ---------------- Aggregates (admin) ----------------

type UserOrderStats struct {
	UserID     uint    `json:"userId"`
	OrderCount int64   `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

func (r *OrderRepository) StatsByUser() (map[uint]UserOrderStats, error) {
	var rows []UserOrderStats
	err := r.DB.Model(&entity.Order{}).
		Select("user_id, COUNT(id) AS order_count, COALESCE(SUM(total), 0) AS total_spent").
		Where("user_id IS NOT NULL").
		Group("user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[uint]UserOrderStats, len(rows))
	for _, s := range rows {
		out[s.UserID] = s
	}
	return out, nil
}

// ---------------- Documents ----------------

// documentColumns leaves data_base64 out; the payload is fetched only
// when serving a single document.
var documentColumns = []string{"id", "created_at", "updated_at", "order_id", "type", "file_name", "mime_type"}

func (r *OrderRepository) ListDocuments(orderID uint) ([]entity.OrderDocument, error) {
	var docs []entity.OrderDocument
	err := r.DB.Select(documentColumns).
		Where("order_id = ?", orderID).
		Find(&docs).Error
	return docs, err
}

// ReplaceDocuments drops existing rows of the submitted types for the
// order, then inserts the new ones. Replace, never append.
func (r *OrderRepository) ReplaceDocuments(orderID uint, types []string, docs []entity.OrderDocument) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("order_id = ? AND type IN ?", orderID, types).
			Delete(&entity.OrderDocument{}).Error; err != nil {
			return err
		}
		for i := range docs {
			docs[i].OrderID = orderID
			if err := tx.Create(&docs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetDocumentWithData selects the heavy payload column explicitly.
func (r *OrderRepository) GetDocumentWithData(orderID uint, docType string) (*entity.OrderDocument, error) {
	var doc entity.OrderDocument
	err := r.DB.Select(append(documentColumns, "data_base64")).
		Where("order_id = ? AND type = ?", orderID, docType).
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}
