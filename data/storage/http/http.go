package http

import (
	"context"
	"encoding/json"
	"fmt"

	http_request "github.com/xhd2015/go-http-request"
	"github.com/xhd2015/walletui/data/storage"
	"github.com/xhd2015/walletui/models"
)

// CodeNotFound is the server response code for a missing record.
const CodeNotFound = 404

// ServerResponse wraps all server responses
type ServerResponse struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// makeRequest makes an HTTP request and unwraps the server response
func (c *Client) makeRequest(ctx context.Context, url string, reqData any, respData any) error {
	req := http_request.New()
	if c.serverAuthToken != "" {
		req = req.Header("Authorization", "Bearer "+c.serverAuthToken)
	}

	var serverResp ServerResponse
	err := req.PostJSON(ctx, c.serverAddr+url, reqData, &serverResp)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	if serverResp.Code == CodeNotFound {
		return fmt.Errorf("%s: %w", serverResp.Msg, storage.ErrNotFound)
	}
	if serverResp.Code != 0 {
		return fmt.Errorf("server error (code %d): %s", serverResp.Code, serverResp.Msg)
	}

	if respData != nil && len(serverResp.Data) > 0 {
		err = json.Unmarshal(serverResp.Data, respData)
		if err != nil {
			return fmt.Errorf("failed to unmarshal response data: %w", err)
		}
	}

	return nil
}

type Client struct {
	serverAddr      string
	serverAuthToken string
}

func NewClient(serverAddr string, serverAuthToken string) *Client {
	return &Client{
		serverAddr:      serverAddr,
		serverAuthToken: serverAuthToken,
	}
}

func (c *Client) Services() storage.Services {
	return storage.Services{
		Accounts:    &AccountHttpService{client: c},
		AddressBook: &AddressBookHttpService{client: c},
		Nodes:       &NodeHttpService{client: c},
		Settings:    &SettingsHttpService{client: c},
		Reset:       c,
	}
}

func (c *Client) Reset(ctx context.Context) error {
	err := c.makeRequest(ctx, "/reset", struct{}{}, nil)
	if err != nil {
		return fmt.Errorf("failed to reset app data: %w", err)
	}
	return nil
}

// AccountHttpService implements storage.AccountService
type AccountHttpService struct {
	client *Client
}

func (s *AccountHttpService) List(ctx context.Context) ([]models.Account, error) {
	var response struct {
		Accounts []models.Account `json:"accounts"`
	}
	err := s.client.makeRequest(ctx, "/accounts/list", struct{}{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return response.Accounts, nil
}

func (s *AccountHttpService) Add(ctx context.Context, account models.Account) error {
	err := s.client.makeRequest(ctx, "/accounts/add", account, nil)
	if err != nil {
		return fmt.Errorf("failed to add account: %w", err)
	}
	return nil
}

func (s *AccountHttpService) Update(ctx context.Context, uuid string, update models.AccountOptional) error {
	params := struct {
		UUID   string                 `json:"uuid"`
		Update models.AccountOptional `json:"update"`
	}{UUID: uuid, Update: update}

	err := s.client.makeRequest(ctx, "/accounts/update", params, nil)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

func (s *AccountHttpService) Delete(ctx context.Context, uuid string) error {
	params := struct {
		UUID string `json:"uuid"`
	}{UUID: uuid}

	err := s.client.makeRequest(ctx, "/accounts/delete", params, nil)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// AddressBookHttpService implements storage.AddressBookService
type AddressBookHttpService struct {
	client *Client
}

func (s *AddressBookHttpService) List(ctx context.Context) ([]models.AddressBookEntry, error) {
	var response struct {
		Entries []models.AddressBookEntry `json:"entries"`
	}
	err := s.client.makeRequest(ctx, "/addressBook/list", struct{}{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to list address book: %w", err)
	}
	return response.Entries, nil
}

func (s *AddressBookHttpService) Add(ctx context.Context, entry models.AddressBookEntry) error {
	err := s.client.makeRequest(ctx, "/addressBook/add", entry, nil)
	if err != nil {
		return fmt.Errorf("failed to add address book entry: %w", err)
	}
	return nil
}

func (s *AddressBookHttpService) Update(ctx context.Context, uuid string, update models.AddressBookEntryOptional) error {
	params := struct {
		UUID   string                          `json:"uuid"`
		Update models.AddressBookEntryOptional `json:"update"`
	}{UUID: uuid, Update: update}

	err := s.client.makeRequest(ctx, "/addressBook/update", params, nil)
	if err != nil {
		return fmt.Errorf("failed to update address book entry: %w", err)
	}
	return nil
}

func (s *AddressBookHttpService) Delete(ctx context.Context, uuid string) error {
	params := struct {
		UUID string `json:"uuid"`
	}{UUID: uuid}

	err := s.client.makeRequest(ctx, "/addressBook/delete", params, nil)
	if err != nil {
		return fmt.Errorf("failed to delete address book entry: %w", err)
	}
	return nil
}

// NodeHttpService implements storage.NodeService
type NodeHttpService struct {
	client *Client
}

func (s *NodeHttpService) List(ctx context.Context) ([]models.CustomNodeConfig, error) {
	var response struct {
		Nodes []models.CustomNodeConfig `json:"nodes"`
	}
	err := s.client.makeRequest(ctx, "/nodes/list", struct{}{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	for i := range response.Nodes {
		response.Nodes[i].IsCustom = true
	}
	return response.Nodes, nil
}

func (s *NodeHttpService) Add(ctx context.Context, node models.CustomNodeConfig) error {
	err := s.client.makeRequest(ctx, "/nodes/add", node, nil)
	if err != nil {
		return fmt.Errorf("failed to add node: %w", err)
	}
	return nil
}

func (s *NodeHttpService) Update(ctx context.Context, network string, name string, node models.CustomNodeConfig) error {
	params := struct {
		Network string                  `json:"network"`
		Name    string                  `json:"name"`
		Node    models.CustomNodeConfig `json:"node"`
	}{Network: network, Name: name, Node: node}

	err := s.client.makeRequest(ctx, "/nodes/update", params, nil)
	if err != nil {
		return fmt.Errorf("failed to update node: %w", err)
	}
	return nil
}

func (s *NodeHttpService) Delete(ctx context.Context, network string, name string) error {
	params := struct {
		Network string `json:"network"`
		Name    string `json:"name"`
	}{Network: network, Name: name}

	err := s.client.makeRequest(ctx, "/nodes/delete", params, nil)
	if err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}
	return nil
}

// SettingsHttpService implements storage.SettingsService
type SettingsHttpService struct {
	client *Client
}

func (s *SettingsHttpService) Get(ctx context.Context) (*models.GlobalSettings, error) {
	var response struct {
		Settings *models.GlobalSettings `json:"settings"`
	}
	err := s.client.makeRequest(ctx, "/settings/get", struct{}{}, &response)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return response.Settings, nil
}

func (s *SettingsHttpService) Save(ctx context.Context, settings models.GlobalSettings) error {
	err := s.client.makeRequest(ctx, "/settings/save", settings, nil)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
