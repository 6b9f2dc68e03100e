package http

import (
	"personal-agenda/internal/auth"
)

// --- Request DTOs ---

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type loginResp struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func newLoginResp(out auth.LoginOutput) loginResp {
	var resp loginResp
	resp.Token = out.Token
	resp.User.ID = out.User.ID
	resp.User.Name = out.User.Name
	resp.User.Email = out.User.Email
	return resp
}
