package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"github.com/google/uuid"
)

const createdTimeLayout = "2006-01-02T15:04:05Z"

// WorkspaceRepository is the persistence collaborator for shared workspaces
// and their invitations.
type WorkspaceRepository interface {
	Create(ctx context.Context, workspace models.Workspace) (models.Workspace, error)
	GetByID(ctx context.Context, id string) (models.Workspace, error)
	AddMember(ctx context.Context, workspaceID string, member models.Member) error
	RemoveMember(ctx context.Context, workspaceID, userID string) error
	CreateInvitation(ctx context.Context, invitation models.Invitation) (models.Invitation, error)
	GetInvitation(ctx context.Context, id string) (models.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id string, status models.InvitationStatus) error
}

type WorkspaceService struct {
	repo WorkspaceRepository
}

func NewWorkspaceService(repo WorkspaceRepository) *WorkspaceService {
	return &WorkspaceService{repo: repo}
}

// Create opens a new workspace with the creator as its only member, as admin.
func (s *WorkspaceService) Create(ctx context.Context, name, description, ownerID, ownerUsername string) (models.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Workspace{}, fmt.Errorf("workspace name is required")
	}
	if ownerID == "" {
		return models.Workspace{}, fmt.Errorf("workspace owner is required")
	}
	return s.repo.Create(ctx, models.Workspace{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		Members: []models.Member{{
			UserID:   ownerID,
			Username: ownerUsername,
			Role:     models.RoleAdmin,
		}},
		CreatedTime: time.Now().UTC().Format(createdTimeLayout),
	})
}

func (s *WorkspaceService) GetByID(ctx context.Context, id string) (models.Workspace, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WorkspaceService) Members(ctx context.Context, workspaceID string) ([]models.Member, error) {
	workspace, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return workspace.Members, nil
}

// Invite creates a pending invitation. Only members who can manage membership
// may invite, and an existing member cannot be invited again.
func (s *WorkspaceService) Invite(ctx context.Context, workspaceID, inviterID, inviteeID string, role models.WorkspaceRole) (models.Invitation, error) {
	workspace, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return models.Invitation{}, err
	}

	inviterRole, ok := workspace.MemberRole(inviterID)
	if !ok || !inviterRole.CanManageMembers() {
		return models.Invitation{}, fmt.Errorf("access forbidden: user does not have the required role")
	}
	if _, exists := workspace.MemberRole(inviteeID); exists {
		return models.Invitation{}, fmt.Errorf("user is already a member of the workspace")
	}

	return s.repo.CreateInvitation(ctx, models.Invitation{
		ID:          uuid.New().String(),
		WorkspaceID: workspaceID,
		InviterID:   inviterID,
		InviteeID:   inviteeID,
		Role:        role,
		Status:      models.InvitationPending,
		CreatedTime: time.Now().UTC().Format(createdTimeLayout),
	})
}

// Respond resolves a pending invitation. Accepting adds the invitee with the
// invited role; either response is final.
func (s *WorkspaceService) Respond(ctx context.Context, invitationID, userID, username string, accept bool) error {
	invitation, err := s.repo.GetInvitation(ctx, invitationID)
	if err != nil {
		return err
	}
	if invitation.InviteeID != userID {
		return fmt.Errorf("invitation does not belong to this user")
	}
	if invitation.Status != models.InvitationPending {
		return fmt.Errorf("invitation already resolved")
	}

	if !accept {
		return s.repo.UpdateInvitationStatus(ctx, invitationID, models.InvitationDeclined)
	}

	if err := s.repo.AddMember(ctx, invitation.WorkspaceID, models.Member{
		UserID:   userID,
		Username: username,
		Role:     invitation.Role,
	}); err != nil {
		return err
	}
	return s.repo.UpdateInvitationStatus(ctx, invitationID, models.InvitationAccepted)
}

// RemoveMember removes a member. Only admins may do so, and the workspace
// owner cannot be removed.
func (s *WorkspaceService) RemoveMember(ctx context.Context, workspaceID, actorID, memberID string) error {
	workspace, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	actorRole, ok := workspace.MemberRole(actorID)
	if !ok || !actorRole.CanManageMembers() {
		return fmt.Errorf("access forbidden: user does not have the required role")
	}
	if memberID == workspace.OwnerID {
		return fmt.Errorf("workspace owner cannot be removed")
	}
	return s.repo.RemoveMember(ctx, workspaceID, memberID)
}

// CanEditTasks reports whether the user may create or edit tasks in the
// workspace per the role lattice.
func (s *WorkspaceService) CanEditTasks(ctx context.Context, workspaceID, userID string) (bool, error) {
	workspace, err := s.repo.GetByID(ctx, workspaceID)
	if err != nil {
		return false, err
	}
	role, ok := workspace.MemberRole(userID)
	return ok && role.CanEditTasks(), nil
}
