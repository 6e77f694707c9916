package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/models"
)

type SQLiteStore struct {
	db *sql.DB
}

type AccountSQLiteStore struct {
	*SQLiteStore
}

type AddressBookSQLiteStore struct {
	*SQLiteStore
}

type NodeSQLiteStore struct {
	*SQLiteStore
}

type SettingsSQLiteStore struct {
	*SQLiteStore
}

func New(filePath string) (*SQLiteStore, error) {
	if err := runMigrations(filePath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Services() storage.Services {
	return storage.Services{
		Accounts:    &AccountSQLiteStore{SQLiteStore: s},
		AddressBook: &AddressBookSQLiteStore{SQLiteStore: s},
		Nodes:       &NodeSQLiteStore{SQLiteStore: s},
		Settings:    &SettingsSQLiteStore{SQLiteStore: s},
		Reset:       s,
	}
}

func (s *SQLiteStore) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"accounts", "address_book", "custom_nodes", "settings"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}

func checkAffected(result sql.Result, what string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	return nil
}

// Account service methods
func (s *AccountSQLiteStore) List(ctx context.Context) ([]models.Account, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT uuid, label, address, network, wallet_type, private, create_time FROM accounts ORDER BY create_time ASC, uuid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		var createTime string
		if err := rows.Scan(&account.UUID, &account.Label, &account.Address, &account.Network, &account.WalletType, &account.Private, &createTime); err != nil {
			return nil, err
		}
		if account.CreateTime, err = tryParseTime(createTime); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (s *AccountSQLiteStore) Add(ctx context.Context, account models.Account) error {
	if account.CreateTime.IsZero() {
		account.CreateTime = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO accounts (uuid, label, address, network, wallet_type, private, create_time) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		account.UUID, account.Label, account.Address, account.Network, account.WalletType, account.Private, formatTime(account.CreateTime))
	return err
}

func (s *AccountSQLiteStore) Update(ctx context.Context, uuid string, update models.AccountOptional) error {
	var account models.Account
	var createTime string
	err := s.db.QueryRowContext(ctx, `SELECT label, private, create_time FROM accounts WHERE uuid = ?`, uuid).Scan(&account.Label, &account.Private, &createTime)
	if err == sql.ErrNoRows {
		return fmt.Errorf("account %s: %w", uuid, storage.ErrNotFound)
	}
	if err != nil {
		return err
	}
	account.Update(&update)

	_, err = s.db.ExecContext(ctx, `UPDATE accounts SET label = ?, private = ? WHERE uuid = ?`, account.Label, account.Private, uuid)
	return err
}

func (s *AccountSQLiteStore) Delete(ctx context.Context, uuid string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE uuid = ?`, uuid)
	if err != nil {
		return err
	}
	return checkAffected(result, "account "+uuid)
}

// AddressBook service methods
func (s *AddressBookSQLiteStore) List(ctx context.Context) ([]models.AddressBookEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT uuid, label, address, notes, network, create_time FROM address_book ORDER BY create_time ASC, uuid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.AddressBookEntry
	for rows.Next() {
		var entry models.AddressBookEntry
		var createTime string
		if err := rows.Scan(&entry.UUID, &entry.Label, &entry.Address, &entry.Notes, &entry.Network, &createTime); err != nil {
			return nil, err
		}
		if entry.CreateTime, err = tryParseTime(createTime); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *AddressBookSQLiteStore) Add(ctx context.Context, entry models.AddressBookEntry) error {
	if entry.CreateTime.IsZero() {
		entry.CreateTime = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO address_book (uuid, label, address, notes, network, create_time) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.UUID, entry.Label, entry.Address, entry.Notes, entry.Network, formatTime(entry.CreateTime))
	return err
}

func (s *AddressBookSQLiteStore) Update(ctx context.Context, uuid string, update models.AddressBookEntryOptional) error {
	var entry models.AddressBookEntry
	err := s.db.QueryRowContext(ctx, `SELECT label, notes FROM address_book WHERE uuid = ?`, uuid).Scan(&entry.Label, &entry.Notes)
	if err == sql.ErrNoRows {
		return fmt.Errorf("address book entry %s: %w", uuid, storage.ErrNotFound)
	}
	if err != nil {
		return err
	}
	entry.Update(&update)

	_, err = s.db.ExecContext(ctx, `UPDATE address_book SET label = ?, notes = ? WHERE uuid = ?`, entry.Label, entry.Notes, uuid)
	return err
}

func (s *AddressBookSQLiteStore) Delete(ctx context.Context, uuid string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM address_book WHERE uuid = ?`, uuid)
	if err != nil {
		return err
	}
	return checkAffected(result, "address book entry "+uuid)
}

// Node service methods
func (s *NodeSQLiteStore) List(ctx context.Context) ([]models.CustomNodeConfig, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT network, name, url, auth_username, auth_password FROM custom_nodes ORDER BY network ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []models.CustomNodeConfig
	for rows.Next() {
		var node models.CustomNodeConfig
		var username, password sql.NullString
		if err := rows.Scan(&node.Network, &node.Name, &node.URL, &username, &password); err != nil {
			return nil, err
		}
		if username.Valid {
			node.Auth = &models.NodeAuth{
				Username: username.String,
				Password: password.String,
			}
		}
		node.IsCustom = true
		nodes = append(nodes, node)
	}
	return nodes, rows.Err()
}

func authColumns(auth *models.NodeAuth) (sql.NullString, sql.NullString) {
	if auth == nil {
		return sql.NullString{}, sql.NullString{}
	}
	return sql.NullString{String: auth.Username, Valid: true}, sql.NullString{String: auth.Password, Valid: true}
}

func (s *NodeSQLiteStore) Add(ctx context.Context, node models.CustomNodeConfig) error {
	username, password := authColumns(node.Auth)
	_, err := s.db.ExecContext(ctx, `INSERT INTO custom_nodes (network, name, url, auth_username, auth_password) VALUES (?, ?, ?, ?, ?)`,
		node.Network, node.Name, node.URL, username, password)
	return err
}

func (s *NodeSQLiteStore) Update(ctx context.Context, network string, name string, node models.CustomNodeConfig) error {
	username, password := authColumns(node.Auth)
	result, err := s.db.ExecContext(ctx, `UPDATE custom_nodes SET name = ?, url = ?, auth_username = ?, auth_password = ? WHERE network = ? AND name = ?`,
		node.Name, node.URL, username, password, network, name)
	if err != nil {
		return err
	}
	return checkAffected(result, "node "+network+"/"+name)
}

func (s *NodeSQLiteStore) Delete(ctx context.Context, network string, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM custom_nodes WHERE network = ? AND name = ?`, network, name)
	if err != nil {
		return err
	}
	return checkAffected(result, "node "+network+"/"+name)
}

// Settings service methods
func (s *SettingsSQLiteStore) Get(ctx context.Context) (*models.GlobalSettings, error) {
	var settings models.GlobalSettings
	err := s.db.QueryRowContext(ctx, `SELECT fiat_currency, inactivity_timer FROM settings WHERE id = 1`).Scan(&settings.FiatCurrency, &settings.InactivityTimer)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsSQLiteStore) Save(ctx context.Context, settings models.GlobalSettings) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO settings (id, fiat_currency, inactivity_timer) VALUES (1, ?, ?)
	ON CONFLICT(id) DO UPDATE SET fiat_currency = excluded.fiat_currency, inactivity_timer = excluded.inactivity_timer`,
		settings.FiatCurrency, settings.InactivityTimer)
	return err
}
