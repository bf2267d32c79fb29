package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/MitulSachdeva/ShopFlow/internal/domain"
	"github.com/MitulSachdeva/ShopFlow/internal/store"
)

type AccountHandler struct{}

func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

type AddressDTO struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

type UserDTO struct {
	ID          string      `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	DateOfBirth string      `json:"date_of_birth,omitempty"`
	Address     *AddressDTO `json:"address,omitempty"`
}

type AccountResponseDTO struct {
	User     *UserDTO           `json:"user"`
	Orders   []OrderResponseDTO `json:"orders"`
	Wishlist []ProductResponse  `json:"wishlist"`
	Theme    string             `json:"theme"`
}

// GET /api/v1/account
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())

	orders := st.Orders()
	orderDTOs := make([]OrderResponseDTO, 0, len(orders))
	for _, o := range orders {
		orderDTOs = append(orderDTOs, convertOrder(o))
	}

	wishlist := st.WishlistProducts()
	wishlistDTOs := make([]ProductResponse, 0, len(wishlist))
	for _, p := range wishlist {
		wishlistDTOs = append(wishlistDTOs, convertProduct(p))
	}

	respondJSON(w, http.StatusOK, AccountResponseDTO{
		User:     convertUser(st.User()),
		Orders:   orderDTOs,
		Wishlist: wishlistDTOs,
		Theme:    string(st.Theme()),
	})
}

// PUT /api/v1/account/profile
func (h *AccountHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())

	var dto UserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if dto.ID == "" || dto.Email == "" {
		respondError(w, http.StatusUnprocessableEntity, "invalid_profile", "id and email are required")
		return
	}

	user := &domain.User{
		ID:          dto.ID,
		FirstName:   dto.FirstName,
		LastName:    dto.LastName,
		Email:       dto.Email,
		Phone:       dto.Phone,
		DateOfBirth: dto.DateOfBirth,
	}
	if dto.Address != nil {
		user.Address = &domain.Address{
			Street: dto.Address.Street,
			City:   dto.Address.City,
			Zip:    dto.Address.Zip,
		}
	}

	st.SetUser(user)
	respondJSON(w, http.StatusOK, convertUser(st.User()))
}

type ThemeResponseDTO struct {
	Theme string `json:"theme"`
}

// GET /api/v1/theme
func (h *AccountHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())
	respondJSON(w, http.StatusOK, ThemeResponseDTO{Theme: string(st.Theme())})
}

// POST /api/v1/theme/toggle
func (h *AccountHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	st := store.FromContext(r.Context())
	respondJSON(w, http.StatusOK, ThemeResponseDTO{Theme: string(st.ToggleTheme())})
}

func convertUser(u *domain.User) *UserDTO {
	if u == nil {
		return nil
	}
	dto := &UserDTO{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		Phone:       u.Phone,
		DateOfBirth: u.DateOfBirth,
	}
	if u.Address != nil {
		dto.Address = &AddressDTO{
			Street: u.Address.Street,
			City:   u.Address.City,
			Zip:    u.Address.Zip,
		}
	}
	return dto
}
