package http

import (
	"time"

	"personal-agenda/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"     binding:"required,min=1,max=255"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Phone    string `json:"phone"    binding:"required,min=6,max=20"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Phone:    r.Phone,
	}
}

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() user.ListInput {
	input := user.ListInput{
		Limit:  r.Limit,
		Offset: r.Offset,
	}
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 20
	}
	if input.Offset < 0 {
		input.Offset = 0
	}
	return input
}

type updateReq struct {
	Name  string `json:"name"  binding:"omitempty,min=1,max=255"`
	Phone string `json:"phone" binding:"omitempty,min=6,max=20"`
}

func (r updateReq) toInput(id string) user.UpdateInput {
	return user.UpdateInput{
		ID:    id,
		Name:  r.Name,
		Phone: r.Phone,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// newUserResp never exposes the password hash.
func newUserResp(u user.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type registerResp struct {
	User userResp `json:"user"`
}

func (h *handler) newRegisterResp(out user.RegisterOutput) registerResp {
	return registerResp{User: newUserResp(out.User)}
}

type listResp struct {
	Users  []userResp `json:"users"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out user.ListOutput) listResp {
	users := make([]userResp, 0, len(out.Users))
	for _, u := range out.Users {
		users = append(users, newUserResp(u))
	}
	return listResp{
		Users:  users,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	User userResp `json:"user"`
}

func (h *handler) newDetailResp(out user.DetailOutput) detailResp {
	return detailResp{User: newUserResp(out.User)}
}

type updateResp struct {
	User userResp `json:"user"`
}

func (h *handler) newUpdateResp(out user.UpdateOutput) updateResp {
	return updateResp{User: newUserResp(out.User)}
}
