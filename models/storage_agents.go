package models

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

// CreateAgentRequest returns gorm.ErrDuplicatedKey when a request for the
// same email already exists; the caller maps that to a conflict response.
func (db *Database) CreateAgentRequest(request *AgentRequest) (*AgentRequest, error) {
	if request.PublicId == "" {
		request.PublicId = NewPublicId()
	}
	if request.Status == "" {
		request.Status = AgentRequestStatusPending
	}
	result := db.GormDB.Create(request)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			slog.Debug("duplicate agent request", "email", request.Email)
		} else {
			slog.Error("failed to create agent request", "email", request.Email, "error", result.Error)
		}
		return nil, result.Error
	}
	slog.Info("agent request created", "requestId", request.PublicId, "email", request.Email)
	return request, nil
}

func (db *Database) GetAgentRequest(publicId string) (*AgentRequest, error) {
	request := &AgentRequest{}
	result := db.GormDB.Take(request, "public_id = ?", publicId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching agent request", "requestId", publicId, "error", result.Error)
		return nil, result.Error
	}
	return request, nil
}

func (db *Database) ListAgentRequests(status string) ([]AgentRequest, error) {
	query := db.GormDB.Model(&AgentRequest{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var requests []AgentRequest
	if err := query.Order("created_at desc").Find(&requests).Error; err != nil {
		slog.Error("error listing agent requests", "status", status, "error", err)
		return nil, err
	}
	return requests, nil
}

// UpdateAgentRequestStatus returns nil, nil when the request does not exist.
func (db *Database) UpdateAgentRequestStatus(publicId string, status string) (*AgentRequest, error) {
	request, err := db.GetAgentRequest(publicId)
	if err != nil || request == nil {
		return nil, err
	}
	request.Status = status
	if err := db.GormDB.Save(request).Error; err != nil {
		slog.Error("failed to update agent request status",
			"requestId", publicId, "status", status, "error", err)
		return nil, err
	}
	slog.Info("agent request status updated", "requestId", publicId, "status", status)
	return request, nil
}
