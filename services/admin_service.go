package services

import (
	"github.com/MarcoT95/static/entity"
	"github.com/MarcoT95/static/repository"
)

// AdminService aggregates per-user order stats for the dashboard.
type AdminService struct {
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
}

func NewAdminService(ur *repository.UserRepository, or *repository.OrderRepository) *AdminService {
	return &AdminService{UserRepo: ur, OrderRepo: or}
}

type AdminUserRow struct {
	entity.User
	OrderCount int64   `json:"orderCount"`
	TotalSpent float64 `json:"totalSpent"`
}

func (s *AdminService) ListUsers() ([]AdminUserRow, error) {
	users, err := s.UserRepo.ListAll()
	if err != nil {
		return nil, err
	}
	stats, err := s.OrderRepo.StatsByUser()
	if err != nil {
		return nil, err
	}

	out := make([]AdminUserRow, 0, len(users))
	for _, u := range users {
		row := AdminUserRow{User: u}
		if st, ok := stats[u.ID]; ok {
			row.OrderCount = st.OrderCount
			row.TotalSpent = st.TotalSpent
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *AdminService) UserOrders(userID uint) ([]entity.Order, error) {
	return s.OrderRepo.ListOrdersForUser(userID)
}
