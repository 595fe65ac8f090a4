package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/sms-ledger/internal/logging"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml", `
bank_accounts:
  - last4: "1234"
    name: "HDFC Salary"
  - last4: "789"
    name: "ICICI Savings"
custom_bank_identifiers:
  - MYCOOP
blocked_senders:
  - SPAMCO
blocked_keywords:
  - lottery
`)

	s := NewFileStore(path, "", &logging.MockLogger{})
	settings, err := s.LoadSettings()
	require.NoError(t, err)

	require.Len(t, settings.BankAccounts, 2)
	assert.Equal(t, "1234", settings.BankAccounts[0].Last4)
	assert.Equal(t, "HDFC Salary", settings.BankAccounts[0].Name)
	assert.Equal(t, []string{"MYCOOP"}, settings.CustomBankIdentifiers)
	assert.Equal(t, []string{"SPAMCO"}, settings.BlockedSenders)
	assert.Equal(t, []string{"lottery"}, settings.BlockedKeywords)
}

func TestLoadSettingsMissingFileYieldsEmptySettings(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nope.yaml"), "", &logging.MockLogger{})

	settings, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Empty(t, settings.BankAccounts)
	assert.Empty(t, settings.BlockedSenders)
}

func TestLoadSettingsRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml", "bank_accounts: [unclosed")

	s := NewFileStore(path, "", &logging.MockLogger{})
	_, err := s.LoadSettings()
	assert.Error(t, err)
}

func TestSaveAndReloadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := NewFileStore(path, "", &logging.MockLogger{})

	require.NoError(t, s.SaveSettings(&Settings{
		BlockedSenders: []string{"SPAMCO"},
	}))

	reloaded, err := s.LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, []string{"SPAMCO"}, reloaded.BlockedSenders)
}

func TestLoadCategoriesTopLevelKey(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "categories.yaml", `
categories:
  - name: Subscriptions
    keywords: [netflix, spotify]
`)

	s := NewFileStore("", path, &logging.MockLogger{})
	categories, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Subscriptions", categories[0].Name)
	assert.Equal(t, []string{"netflix", "spotify"}, categories[0].Keywords)
}

func TestLoadCategoriesBareArrayFallback(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "categories.yaml", `
- name: Subscriptions
  keywords: [netflix]
`)

	s := NewFileStore("", path, &logging.MockLogger{})
	categories, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Subscriptions", categories[0].Name)
}

func TestLoadCategoriesMissingFileYieldsEmptySlice(t *testing.T) {
	s := NewFileStore("", filepath.Join(t.TempDir(), "nope.yaml"), &logging.MockLogger{})

	categories, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}
