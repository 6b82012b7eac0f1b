package models

import (
	"errors"
	"log/slog"

	"gorm.io/gorm"
)

func (db *Database) CreateApplication(application *Application) (*Application, error) {
	if application.PublicId == "" {
		application.PublicId = NewPublicId()
	}
	if application.Status == "" {
		application.Status = ApplicationStatusPending
	}
	result := db.GormDB.Create(application)
	if result.Error != nil {
		slog.Error("failed to create application",
			"applicantEmail", application.ApplicantEmail,
			"policyId", application.PolicyId,
			"error", result.Error)
		return nil, result.Error
	}
	slog.Info("application created",
		"applicationId", application.PublicId,
		"applicantEmail", application.ApplicantEmail,
		"policyId", application.PolicyId)
	return application, nil
}

func (db *Database) GetApplication(publicId string) (*Application, error) {
	application := &Application{}
	result := db.GormDB.Take(application, "public_id = ?", publicId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("error fetching application", "applicationId", publicId, "error", result.Error)
		return nil, result.Error
	}
	return application, nil
}

func (db *Database) GetApplicationsForApplicant(email string) ([]Application, error) {
	var applications []Application
	err := db.GormDB.Where("applicant_email = ?", email).
		Order("created_at desc").Find(&applications).Error
	if err != nil {
		slog.Error("error fetching applications for applicant", "email", email, "error", err)
		return nil, err
	}
	return applications, nil
}

func (db *Database) GetApplicationsForAgent(agentEmail string) ([]Application, error) {
	var applications []Application
	err := db.GormDB.Where("assigned_agent_email = ?", agentEmail).
		Order("created_at desc").Find(&applications).Error
	if err != nil {
		slog.Error("error fetching applications for agent", "agentEmail", agentEmail, "error", err)
		return nil, err
	}
	return applications, nil
}

func (db *Database) ListApplications(status string) ([]Application, error) {
	query := db.GormDB.Model(&Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var applications []Application
	if err := query.Order("created_at desc").Find(&applications).Error; err != nil {
		slog.Error("error listing applications", "status", status, "error", err)
		return nil, err
	}
	return applications, nil
}

// UpdateApplicationStatus returns nil, nil when the application does not exist.
func (db *Database) UpdateApplicationStatus(publicId string, status string, feedback string) (*Application, error) {
	application, err := db.GetApplication(publicId)
	if err != nil || application == nil {
		return nil, err
	}
	application.Status = status
	application.RejectionFeedback = feedback
	if err := db.GormDB.Save(application).Error; err != nil {
		slog.Error("failed to update application status",
			"applicationId", publicId, "status", status, "error", err)
		return nil, err
	}
	slog.Info("application status updated", "applicationId", publicId, "status", status)
	return application, nil
}

func (db *Database) AssignAgentToApplication(publicId string, agentEmail string) (*Application, error) {
	application, err := db.GetApplication(publicId)
	if err != nil || application == nil {
		return nil, err
	}
	application.AssignedAgentEmail = agentEmail
	if err := db.GormDB.Save(application).Error; err != nil {
		slog.Error("failed to assign agent to application",
			"applicationId", publicId, "agentEmail", agentEmail, "error", err)
		return nil, err
	}
	slog.Info("agent assigned to application", "applicationId", publicId, "agentEmail", agentEmail)
	return application, nil
}

func (db *Database) DeleteApplication(publicId string) (bool, error) {
	result := db.GormDB.Where("public_id = ?", publicId).Delete(&Application{})
	if result.Error != nil {
		slog.Error("failed to delete application", "applicationId", publicId, "error", result.Error)
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
