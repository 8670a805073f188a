package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailflow/internal/store"
)

func strPtr(s string) *string { return &s }

func TestTemplateCRUD(t *testing.T) {
	t.Parallel()
	m := store.NewMemory()

	created := m.CreateTemplate(store.Template{
		Name:        "Receipt",
		Type:        store.TemplateTypeReceipt,
		Subject:     "Your receipt",
		HTMLContent: "<p>Hi {{name}}</p>",
		Variables:   []string{"name"},
		IsActive:    true,
		UserID:      "u1",
	})
	require.NotEmpty(t, created.ID)
	assert.Equal(t, 0, created.UsageCount)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := m.Template(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := m.UpdateTemplate(created.ID, store.TemplateUpdate{
		Name:     strPtr("Order Receipt"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Order Receipt", updated.Name)
	assert.False(t, updated.IsActive)
	// untouched fields survive partial updates
	assert.Equal(t, "Your receipt", updated.Subject)

	_, err = m.UpdateTemplate("missing", store.TemplateUpdate{})
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, m.DeleteTemplate(created.ID))
	assert.ErrorIs(t, m.DeleteTemplate(created.ID), store.ErrNotFound)
	assert.Empty(t, m.Templates("u1"))
}

func TestTemplatesFilteredByUser(t *testing.T) {
	t.Parallel()
	m := store.NewMemory()

	first := m.CreateTemplate(store.Template{Name: "a", UserID: "u1"})
	m.CreateTemplate(store.Template{Name: "b", UserID: "u2"})
	second := m.CreateTemplate(store.Template{Name: "c", UserID: "u1"})

	list := m.Templates("u1")
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestIncrementTemplateUsage(t *testing.T) {
	t.Parallel()
	m := store.NewMemory()

	tpl := m.CreateTemplate(store.Template{Name: "a", UserID: "u1"})
	for range 3 {
		m.IncrementTemplateUsage(tpl.ID)
	}

	got, err := m.Template(tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.UsageCount)

	// missing id is a no-op
	m.IncrementTemplateUsage("missing")
	got, err = m.Template(tpl.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.UsageCount)
}

func TestContactCRUD(t *testing.T) {
	t.Parallel()
	m := store.NewMemory()

	created := m.CreateContact(store.Contact{Email: "jane@example.com", UserID: "u1"})
	require.NotEmpty(t, created.ID)
	assert.NotNil(t, created.Tags, "tags default to empty, not null")

	got, err := m.Contact(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := m.UpdateContact(created.ID, store.ContactUpdate{
		Name: strPtr("Jane"),
		Tags: []string{"vip"},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Name)
	assert.Equal(t, "Jane", *updated.Name)
	assert.Equal(t, []string{"vip"}, updated.Tags)
	assert.Equal(t, "jane@example.com", updated.Email)

	require.NoError(t, m.DeleteContact(created.ID))
	assert.ErrorIs(t, m.DeleteContact(created.ID), store.ErrNotFound)
	_, err = m.Contact(created.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateSentEmailDefaults(t *testing.T) {
	t.Parallel()
	m := store.NewMemory()

	e := m.CreateSentEmail(store.SentEmail{
		RecipientEmail: "jane@example.com",
		Subject:        "Hello",
		HTMLContent:    "<p>Hi</p>",
		UserID:         "u1",
	})

	require.NotEmpty(t, e.ID)
	assert.Equal(t, store.StatusPending, e.Status)
	assert.False(t, e.SentAt.IsZero())
	assert.Nil(t, e.TemplateID)
	assert.Nil(t, e.DeliveredAt)
	assert.Nil(t, e.OpenedAt)
	assert.Nil(t, e.ErrorMessage)
}

func TestSentEmailsNewestFirst(t *testing.T) {
	t.Parallel()
	m := store.NewMemory()

	first := m.CreateSentEmail(store.SentEmail{RecipientEmail: "a@example.com", UserID: "u1"})
	second := m.CreateSentEmail(store.SentEmail{RecipientEmail: "b@example.com", UserID: "u1"})
	m.CreateSentEmail(store.SentEmail{RecipientEmail: "c@example.com", UserID: "other"})

	list := m.SentEmails("u1")
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdateSentEmailStatus(t *testing.T) {
	t.Parallel()

	t.Run("pending to delivered", func(t *testing.T) {
		t.Parallel()
		m := store.NewMemory()
		e := m.CreateSentEmail(store.SentEmail{RecipientEmail: "a@example.com", UserID: "u1"})

		at := time.Now()
		require.NoError(t, m.UpdateSentEmailStatus(e.ID, store.StatusDelivered, at, ""))

		got, err := m.SentEmail(e.ID)
		require.NoError(t, err)
		assert.Equal(t, store.StatusDelivered, got.Status)
		require.NotNil(t, got.DeliveredAt)
		assert.True(t, got.DeliveredAt.Equal(at))
		assert.Nil(t, got.ErrorMessage)
	})

	t.Run("pending to failed stores reason", func(t *testing.T) {
		t.Parallel()
		m := store.NewMemory()
		e := m.CreateSentEmail(store.SentEmail{RecipientEmail: "a@example.com", UserID: "u1"})

		require.NoError(t, m.UpdateSentEmailStatus(e.ID, store.StatusFailed, time.Now(), "mailbox full"))

		got, err := m.SentEmail(e.ID)
		require.NoError(t, err)
		assert.Equal(t, store.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "mailbox full", *got.ErrorMessage)
		assert.Nil(t, got.DeliveredAt)
	})

	t.Run("delivered to opened", func(t *testing.T) {
		t.Parallel()
		m := store.NewMemory()
		e := m.CreateSentEmail(store.SentEmail{RecipientEmail: "a@example.com", UserID: "u1"})

		require.NoError(t, m.UpdateSentEmailStatus(e.ID, store.StatusDelivered, time.Now(), ""))
		require.NoError(t, m.UpdateSentEmailStatus(e.ID, store.StatusOpened, time.Now(), ""))

		got, err := m.SentEmail(e.ID)
		require.NoError(t, err)
		assert.Equal(t, store.StatusOpened, got.Status)
		assert.NotNil(t, got.OpenedAt)
	})

	t.Run("illegal transitions rejected", func(t *testing.T) {
		t.Parallel()
		m := store.NewMemory()
		e := m.CreateSentEmail(store.SentEmail{RecipientEmail: "a@example.com", UserID: "u1"})

		assert.ErrorIs(t, m.UpdateSentEmailStatus(e.ID, store.StatusOpened, time.Now(), ""), store.ErrInvalidTransition)

		require.NoError(t, m.UpdateSentEmailStatus(e.ID, store.StatusFailed, time.Now(), "x"))
		assert.ErrorIs(t, m.UpdateSentEmailStatus(e.ID, store.StatusDelivered, time.Now(), ""), store.ErrInvalidTransition)
	})

	t.Run("missing record", func(t *testing.T) {
		t.Parallel()
		m := store.NewMemory()
		assert.ErrorIs(t, m.UpdateSentEmailStatus("missing", store.StatusDelivered, time.Now(), ""), store.ErrNotFound)
	})
}

func TestUserStore(t *testing.T) {
	t.Parallel()
	m := store.NewMemory()

	u := m.CreateUser(store.User{Username: "demo", Email: "demo@example.com", Name: "Demo"})
	require.NotEmpty(t, u.ID)

	got, err := m.User(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	_, err = m.User("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func boolPtr(b bool) *bool { return &b }
