package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/DANGPP/btlthayPhong-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkspaceRepo struct {
	workspaces  map[string]models.Workspace
	invitations map[string]models.Invitation
	nextID      int
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{
		workspaces:  map[string]models.Workspace{},
		invitations: map[string]models.Invitation{},
	}
}

func (r *fakeWorkspaceRepo) Create(_ context.Context, workspace models.Workspace) (models.Workspace, error) {
	r.nextID++
	workspace.ID = fmt.Sprintf("ws-%d", r.nextID)
	r.workspaces[workspace.ID] = workspace
	return workspace, nil
}

func (r *fakeWorkspaceRepo) GetByID(_ context.Context, id string) (models.Workspace, error) {
	ws, ok := r.workspaces[id]
	if !ok {
		return models.Workspace{}, fmt.Errorf("workspace not found")
	}
	return ws, nil
}

func (r *fakeWorkspaceRepo) AddMember(_ context.Context, workspaceID string, member models.Member) error {
	ws, ok := r.workspaces[workspaceID]
	if !ok {
		return fmt.Errorf("workspace not found")
	}
	ws.Members = append(ws.Members, member)
	r.workspaces[workspaceID] = ws
	return nil
}

func (r *fakeWorkspaceRepo) RemoveMember(_ context.Context, workspaceID, userID string) error {
	ws, ok := r.workspaces[workspaceID]
	if !ok {
		return fmt.Errorf("workspace not found")
	}
	members := ws.Members[:0]
	for _, m := range ws.Members {
		if m.UserID != userID {
			members = append(members, m)
		}
	}
	ws.Members = members
	r.workspaces[workspaceID] = ws
	return nil
}

func (r *fakeWorkspaceRepo) CreateInvitation(_ context.Context, invitation models.Invitation) (models.Invitation, error) {
	r.invitations[invitation.ID] = invitation
	return invitation, nil
}

func (r *fakeWorkspaceRepo) GetInvitation(_ context.Context, id string) (models.Invitation, error) {
	inv, ok := r.invitations[id]
	if !ok {
		return models.Invitation{}, fmt.Errorf("invitation not found")
	}
	return inv, nil
}

func (r *fakeWorkspaceRepo) UpdateInvitationStatus(_ context.Context, id string, status models.InvitationStatus) error {
	inv, ok := r.invitations[id]
	if !ok {
		return fmt.Errorf("invitation not found for update")
	}
	inv.Status = status
	r.invitations[id] = inv
	return nil
}

func TestCreateWorkspace(t *testing.T) {
	service := NewWorkspaceService(newFakeWorkspaceRepo())

	ws, err := service.Create(context.Background(), "Team Alpha", "shared list", "u1", "alice")
	require.NoError(t, err)

	assert.Equal(t, "u1", ws.OwnerID)
	require.Len(t, ws.Members, 1)
	assert.Equal(t, models.RoleAdmin, ws.Members[0].Role)
}

func TestCreateWorkspaceValidation(t *testing.T) {
	service := NewWorkspaceService(newFakeWorkspaceRepo())

	_, err := service.Create(context.Background(), "   ", "", "u1", "alice")
	assert.Error(t, err)

	_, err = service.Create(context.Background(), "Team", "", "", "alice")
	assert.Error(t, err)
}

func TestInvitePermissions(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	service := NewWorkspaceService(repo)

	ws, err := service.Create(context.Background(), "Team Alpha", "", "u1", "alice")
	require.NoError(t, err)
	require.NoError(t, repo.AddMember(context.Background(), ws.ID, models.Member{UserID: "u2", Role: models.RoleEditor}))

	t.Run("admins may invite", func(t *testing.T) {
		inv, err := service.Invite(context.Background(), ws.ID, "u1", "u3", models.RoleViewer)
		require.NoError(t, err)
		assert.Equal(t, models.InvitationPending, inv.Status)
		assert.NotEmpty(t, inv.ID)
	})

	t.Run("editors may not invite", func(t *testing.T) {
		_, err := service.Invite(context.Background(), ws.ID, "u2", "u4", models.RoleViewer)
		assert.Error(t, err)
	})

	t.Run("non-members may not invite", func(t *testing.T) {
		_, err := service.Invite(context.Background(), ws.ID, "stranger", "u4", models.RoleViewer)
		assert.Error(t, err)
	})

	t.Run("existing members cannot be re-invited", func(t *testing.T) {
		_, err := service.Invite(context.Background(), ws.ID, "u1", "u2", models.RoleViewer)
		assert.Error(t, err)
	})
}

func TestRespondInvitation(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	service := NewWorkspaceService(repo)

	ws, err := service.Create(context.Background(), "Team Alpha", "", "u1", "alice")
	require.NoError(t, err)

	t.Run("accept adds the member with the invited role", func(t *testing.T) {
		inv, err := service.Invite(context.Background(), ws.ID, "u1", "u2", models.RoleEditor)
		require.NoError(t, err)

		require.NoError(t, service.Respond(context.Background(), inv.ID, "u2", "bob", true))

		updated, err := service.GetByID(context.Background(), ws.ID)
		require.NoError(t, err)
		role, ok := updated.MemberRole("u2")
		require.True(t, ok)
		assert.Equal(t, models.RoleEditor, role)
	})

	t.Run("decline leaves membership untouched", func(t *testing.T) {
		inv, err := service.Invite(context.Background(), ws.ID, "u1", "u3", models.RoleViewer)
		require.NoError(t, err)

		require.NoError(t, service.Respond(context.Background(), inv.ID, "u3", "carol", false))

		updated, err := service.GetByID(context.Background(), ws.ID)
		require.NoError(t, err)
		_, ok := updated.MemberRole("u3")
		assert.False(t, ok)
	})

	t.Run("only the invitee may respond", func(t *testing.T) {
		inv, err := service.Invite(context.Background(), ws.ID, "u1", "u5", models.RoleViewer)
		require.NoError(t, err)
		assert.Error(t, service.Respond(context.Background(), inv.ID, "u6", "mallory", true))
	})

	t.Run("a resolved invitation is final", func(t *testing.T) {
		inv, err := service.Invite(context.Background(), ws.ID, "u1", "u7", models.RoleViewer)
		require.NoError(t, err)
		require.NoError(t, service.Respond(context.Background(), inv.ID, "u7", "dave", false))
		assert.Error(t, service.Respond(context.Background(), inv.ID, "u7", "dave", true))
	})
}

func TestRemoveMember(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	service := NewWorkspaceService(repo)

	ws, err := service.Create(context.Background(), "Team Alpha", "", "u1", "alice")
	require.NoError(t, err)
	require.NoError(t, repo.AddMember(context.Background(), ws.ID, models.Member{UserID: "u2", Role: models.RoleEditor}))

	t.Run("editors may not remove members", func(t *testing.T) {
		assert.Error(t, service.RemoveMember(context.Background(), ws.ID, "u2", "u1"))
	})

	t.Run("the owner cannot be removed", func(t *testing.T) {
		assert.Error(t, service.RemoveMember(context.Background(), ws.ID, "u1", "u1"))
	})

	t.Run("admins remove members", func(t *testing.T) {
		require.NoError(t, service.RemoveMember(context.Background(), ws.ID, "u1", "u2"))
		updated, err := service.GetByID(context.Background(), ws.ID)
		require.NoError(t, err)
		_, ok := updated.MemberRole("u2")
		assert.False(t, ok)
	})
}

func TestCanEditTasks(t *testing.T) {
	repo := newFakeWorkspaceRepo()
	service := NewWorkspaceService(repo)

	ws, err := service.Create(context.Background(), "Team Alpha", "", "u1", "alice")
	require.NoError(t, err)
	require.NoError(t, repo.AddMember(context.Background(), ws.ID, models.Member{UserID: "u2", Role: models.RoleViewer}))

	canEdit, err := service.CanEditTasks(context.Background(), ws.ID, "u1")
	require.NoError(t, err)
	assert.True(t, canEdit)

	canEdit, err = service.CanEditTasks(context.Background(), ws.ID, "u2")
	require.NoError(t, err)
	assert.False(t, canEdit)

	canEdit, err = service.CanEditTasks(context.Background(), ws.ID, "stranger")
	require.NoError(t, err)
	assert.False(t, canEdit)
}
