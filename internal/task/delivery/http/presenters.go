package http

import (
	"time"

	"personal-agenda/internal/model"
	"personal-agenda/internal/task"
	"personal-agenda/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Date        string `json:"date"        binding:"required"`
	StartTime   string `json:"start_time"  binding:"required"`
	EndTime     string `json:"end_time"    binding:"required"`
	Category    string `json:"category"    binding:"max=50"`
}

func (r createReq) toInput() (task.CreateInput, error) {
	date, err := time.Parse(response.DateFormat, r.Date)
	if err != nil {
		return task.CreateInput{}, err
	}
	return task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Category:    model.ParseCategory(r.Category),
	}, nil
}

type listReq struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() (task.ListInput, error) {
	input := task.ListInput{
		Limit:  r.Limit,
		Offset: r.Offset,
	}
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 20
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	if r.From != "" {
		from, err := time.Parse(response.DateFormat, r.From)
		if err != nil {
			return task.ListInput{}, err
		}
		input.DateFrom = &from
	}
	if r.To != "" {
		to, err := time.Parse(response.DateFormat, r.To)
		if err != nil {
			return task.ListInput{}, err
		}
		input.DateTo = &to
	}
	if r.Category != "" {
		input.Category = model.ParseCategory(r.Category)
	}
	return input, nil
}

type updateReq struct {
	ID          string `json:"-"` // populated from URI param
	Title       string `json:"title"       binding:"omitempty,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Category    string `json:"category"    binding:"omitempty,max=50"`
}

func (r updateReq) toInput() (task.UpdateInput, error) {
	input := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
	if r.Date != "" {
		date, err := time.Parse(response.DateFormat, r.Date)
		if err != nil {
			return task.UpdateInput{}, err
		}
		input.Date = &date
	}
	if r.Category != "" {
		input.Category = model.ParseCategory(r.Category)
	}
	return input, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Date:        t.Date.Format(response.DateFormat),
		StartTime:   t.StartTime,
		EndTime:     t.EndTime,
		Category:    string(t.Category),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}
