package httpapi

import (
	"fitprogress/internal/progress"
	"fitprogress/internal/server/models"
	"fitprogress/internal/server/services"
)

type userResponse struct {
	ID          string                      `json:"id"`
	Name        string                      `json:"name"`
	Email       string                      `json:"email"`
	Role        models.Role                 `json:"role"`
	ProfessorID string                      `json:"professorId,omitempty"`
	Settings    models.NotificationSettings `json:"notificationSettings"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		ProfessorID: u.ProfessorID,
		Settings:    u.NotificationSettings,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type measurementResponse struct {
	ID          string             `json:"id"`
	Date        string             `json:"date"`
	DisplayDate string             `json:"displayDate"`
	Weight      float64            `json:"weight"`
	Height      float64            `json:"height,omitempty"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	Notes       string             `json:"notes,omitempty"`
}

func toMeasurementResponse(m *models.Measurement) measurementResponse {
	return measurementResponse{
		ID:          m.ID,
		Date:        m.Date.String(),
		DisplayDate: m.Date.Display(),
		Weight:      m.Weight,
		Height:      m.Height,
		Metrics:     m.Metrics,
		Notes:       m.Notes,
	}
}

func toMeasurementResponses(ms []*models.Measurement) []measurementResponse {
	out := make([]measurementResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, toMeasurementResponse(m))
	}
	return out
}

type photoResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	DisplayDate  string `json:"displayDate"`
	Angle        string `json:"angle"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Notes        string `json:"notes,omitempty"`
}

func toPhotoResponse(p *models.Photo) photoResponse {
	return photoResponse{
		ID:           p.ID,
		Date:         p.Date.String(),
		DisplayDate:  p.Date.Display(),
		Angle:        p.Angle.String(),
		URL:          p.URL,
		ThumbnailURL: p.ThumbnailURL,
		Notes:        p.Notes,
	}
}

func toPhotoResponses(ps []*models.Photo) []photoResponse {
	out := make([]photoResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toPhotoResponse(p))
	}
	return out
}

type gridCell struct {
	Photo *photoResponse `json:"photo"`
}

type gridRow struct {
	Angle string     `json:"angle"`
	Cells []gridCell `json:"cells"`
}

type gridResponse struct {
	Dates           []string             `json:"dates"`
	DisplayDates    []string             `json:"displayDates"`
	Rows            []gridRow            `json:"rows"`
	AvailableMonths []progress.MonthYear `json:"availableMonths"`
	Weights         map[string]float64   `json:"weights"`
}

func toGridResponse(res *services.GridResult) gridResponse {
	grid := res.Grid
	resp := gridResponse{
		Dates:           make([]string, 0, len(grid.Dates)),
		DisplayDates:    make([]string, 0, len(grid.Dates)),
		Rows:            make([]gridRow, 0, len(grid.Rows)),
		AvailableMonths: res.AvailableMonths,
		Weights:         make(map[string]float64, len(res.Weights)),
	}
	for d, w := range res.Weights {
		resp.Weights[d.String()] = w
	}
	for _, d := range grid.Dates {
		resp.Dates = append(resp.Dates, d.String())
		resp.DisplayDates = append(resp.DisplayDates, d.Display())
	}
	for _, row := range grid.Rows {
		r := gridRow{Angle: row.Angle.GridCode(), Cells: make([]gridCell, 0, len(row.Cells))}
		for _, cell := range row.Cells {
			var photo *photoResponse
			if !cell.Empty() {
				p := photoResponse{
					ID:           cell.Photo.ID,
					Date:         cell.Photo.Date.String(),
					DisplayDate:  cell.Photo.Date.Display(),
					Angle:        cell.Photo.Angle.String(),
					URL:          cell.Photo.URL,
					ThumbnailURL: cell.Photo.ThumbnailURL,
					Notes:        cell.Photo.Notes,
				}
				photo = &p
			}
			r.Cells = append(r.Cells, gridCell{Photo: photo})
		}
		resp.Rows = append(resp.Rows, r)
	}
	return resp
}
