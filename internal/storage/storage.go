// /internal/storage/storage.go
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/keshon/datastore"
)

const commandHistoryLimit int = 20

// Storage keeps per-guild bot state: the prefix override and a bounded
// command history. Everything lives in one JSON datastore keyed by guild ID.
type Storage struct {
	ds *datastore.DataStore
}

// CommandHistoryRecord is one logged command invocation.
type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Datetime  time.Time `json:"datetime"`
}

// Record is the per-guild document.
type Record struct {
	Prefix              string                 `json:"prefix,omitempty"`
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
}

func New(filePath string) (*Storage, error) {
	ds, err := datastore.New(filePath)
	if err != nil {
		return nil, err
	}
	return &Storage{ds: ds}, nil
}

func (s *Storage) Close() error {
	return s.ds.Close()
}

// getOrCreateGuildRecord returns the Record for a guild, creating an empty
// one on first use.
func (s *Storage) getOrCreateGuildRecord(guildID string) (*Record, error) {
	data, exists := s.ds.Get(guildID)
	if !exists {
		newRecord := &Record{
			CommandsHistoryList: []CommandHistoryRecord{},
		}
		s.ds.Add(guildID, newRecord)
		return newRecord, nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error marshalling data: %w", err)
	}

	var record Record
	if err := json.Unmarshal(jsonData, &record); err != nil {
		return nil, fmt.Errorf("error unmarshalling to *Record: %w", err)
	}
	return &record, nil
}

func (s *Storage) saveGuildRecord(guildID string, record *Record) error {
	s.ds.Add(guildID, record)
	return s.ds.SaveToFile()
}

// GetPrefix returns the guild's prefix override, or "" when the guild uses
// the default.
func (s *Storage) GetPrefix(guildID string) (string, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return "", err
	}
	return record.Prefix, nil
}

// SetPrefix stores a prefix override for a guild. An empty value removes
// the override.
func (s *Storage) SetPrefix(guildID, prefix string) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Prefix = prefix
	return s.saveGuildRecord(guildID, record)
}

// AddCommandHistory appends a history record, keeping only the most recent
// entries.
func (s *Storage) AddCommandHistory(guildID string, rec CommandHistoryRecord) error {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = append(record.CommandsHistoryList, rec)
	if len(record.CommandsHistoryList) > commandHistoryLimit {
		record.CommandsHistoryList = record.CommandsHistoryList[len(record.CommandsHistoryList)-commandHistoryLimit:]
	}
	return s.saveGuildRecord(guildID, record)
}

// GetCommandHistory returns the guild's logged invocations, oldest first.
func (s *Storage) GetCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	record, err := s.getOrCreateGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}
