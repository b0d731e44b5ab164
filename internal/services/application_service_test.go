package services

import (
	"testing"

	"contrata_backend/internal/models"
	"contrata_backend/internal/services/dto"
	"contrata_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApplication(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	freelancer := createUser(t, db, "freelancer@test.com", models.UserRoleFreelancer, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	price := 180.0
	application, err := service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID:  freelancer.ID,
		JobID:         job.ID,
		ProposedPrice: &price,
		Proposal:      "Tenho 5 anos de experiência",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.Equal(t, 180.0, application.ProposedPrice)
	assert.Equal(t, freelancer.ID, application.FreelancerID)
}

func TestCreateApplicationDefaultsToJobPayment(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	freelancer := createUser(t, db, "freelancer@test.com", models.UserRoleFreelancer, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	application, err := service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID: freelancer.ID,
		JobID:        job.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, job.Payment, application.ProposedPrice)
}

func TestCreateApplicationRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	freelancer := createUser(t, db, "freelancer@test.com", models.UserRoleFreelancer, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	req := &dto.CreateApplicationRequest{FreelancerID: freelancer.ID, JobID: job.ID}
	_, err := service.CreateApplication(req)
	require.NoError(t, err)

	_, err = service.CreateApplication(req)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyApplied)

	// A second job from the same client is a fresh pair.
	otherJob := createJob(t, db, client.ID, subcategory.ID)
	_, err = service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID: freelancer.ID, JobID: otherJob.ID,
	})
	assert.NoError(t, err)
}

func TestCreateApplicationRejectsSelfApply(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	// A contratante is blocked by the role check first; give the owner
	// a freelancer role to reach the self-apply rule.
	require.NoError(t, db.Model(client).Update("role", models.UserRoleFreelancer).Error)

	_, err := service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID: client.ID,
		JobID:        job.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrCannotApplyToOwnJob)
}

func TestCreateApplicationRejectsContratante(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	other := createUser(t, db, "other@test.com", models.UserRoleContratante, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	_, err := service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID: other.ID,
		JobID:        job.ID,
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)
}

func TestGetApplicationsByJobOwnerOnly(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	other := createUser(t, db, "other@test.com", models.UserRoleContratante, false)
	freelancer := createUser(t, db, "freelancer@test.com", models.UserRoleFreelancer, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	_, err := service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID: freelancer.ID, JobID: job.ID,
	})
	require.NoError(t, err)

	_, err = service.GetApplicationsByJob(job.ID, other.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	applications, err := service.GetApplicationsByJob(job.ID, client.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	require.NotNil(t, applications[0].Freelancer)
	assert.Equal(t, freelancer.ID, applications[0].Freelancer.ID)
}

func TestGetApplicationsByFreelancerEnrichesJob(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	freelancer := createUser(t, db, "freelancer@test.com", models.UserRoleFreelancer, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	_, err := service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID: freelancer.ID, JobID: job.ID,
	})
	require.NoError(t, err)

	applications, err := service.GetApplicationsByFreelancer(freelancer.ID)
	require.NoError(t, err)
	require.Len(t, applications, 1)
	require.NotNil(t, applications[0].Job)
	assert.Equal(t, job.Title, applications[0].Job.Title)
	require.NotNil(t, applications[0].Job.Client)
	assert.Equal(t, client.ID, applications[0].Job.Client.ID)
	require.NotNil(t, applications[0].Job.Subcategory)
}

func TestUpdateApplicationStatus(t *testing.T) {
	db := newTestDB(t)
	service := newApplicationService(db)
	client := createUser(t, db, "client@test.com", models.UserRoleContratante, false)
	other := createUser(t, db, "other@test.com", models.UserRoleContratante, false)
	freelancer := createUser(t, db, "freelancer@test.com", models.UserRoleFreelancer, false)
	subcategory := createSubcategory(t, db)
	job := createJob(t, db, client.ID, subcategory.ID)

	created, err := service.CreateApplication(&dto.CreateApplicationRequest{
		FreelancerID: freelancer.ID, JobID: job.ID,
	})
	require.NoError(t, err)

	_, err = service.UpdateApplicationStatus(created.ID, other.ID, models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	updated, err := service.UpdateApplicationStatus(created.ID, client.ID, models.ApplicationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusAccepted, updated.Status)

	// A decision is not final; the owner may re-set it.
	updated, err = service.UpdateApplicationStatus(created.ID, client.ID, models.ApplicationStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusRejected, updated.Status)

	_, err = service.UpdateApplicationStatus(created.ID, client.ID, models.ApplicationStatus("archived"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidApplicationStatus)

	_, err = service.UpdateApplicationStatus("missing-id", client.ID, models.ApplicationStatusAccepted)
	assert.ErrorIs(t, err, apperrors.ErrApplicationNotFound)
}
