package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCacheTTL is how long cached listings and transcripts are
// reused before refetching
const DefaultCacheTTL = 5 * time.Minute

// CacheManager handles caching of fetched session listings and
// transcripts so repeated commands avoid refetching
type CacheManager struct {
	cacheDir string
}

// CacheMetadata stores metadata about the cache
type CacheMetadata struct {
	ServerURL    string    `json:"server_url" yaml:"server_url"`
	AgentID      string    `json:"agent_id" yaml:"agent_id"`
	CacheVersion string    `json:"cache_version" yaml:"cache_version"`
	FetchedAt    time.Time `json:"fetched_at" yaml:"fetched_at"`
}

// SessionIndex represents the YAML index of cached session summaries
type SessionIndex struct {
	Sessions []SessionSummary `yaml:"sessions"`
	Metadata CacheMetadata    `yaml:"metadata"`
}

// NewCacheManager creates a new cache manager
func NewCacheManager(cacheDir string) *CacheManager {
	return &CacheManager{
		cacheDir: cacheDir,
	}
}

// EnsureCacheDir ensures the cache directory exists
func (cm *CacheManager) EnsureCacheDir() error {
	return os.MkdirAll(cm.cacheDir, 0755)
}

// GetCacheDir returns the cache directory path
func (cm *CacheManager) GetCacheDir() string {
	return cm.cacheDir
}

// GetIndexPath returns the path to the session index YAML file
func (cm *CacheManager) GetIndexPath() string {
	return filepath.Join(cm.cacheDir, "sessions.yaml")
}

// GetTranscriptPath returns the path to a session's cached transcript
func (cm *CacheManager) GetTranscriptPath(sessionID string) string {
	return filepath.Join(cm.cacheDir, fmt.Sprintf("transcript_%s.json", sessionID))
}

// IsFresh checks whether the cached index matches the server and agent
// and was fetched within ttl
func (cm *CacheManager) IsFresh(serverURL, agentID string, ttl time.Duration) (bool, error) {
	index, err := cm.LoadIndex()
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	if index.Metadata.ServerURL != serverURL || index.Metadata.AgentID != agentID {
		return false, nil
	}

	return time.Since(index.Metadata.FetchedAt) <= ttl, nil
}

// IsTranscriptFresh checks whether a cached transcript exists and was
// written within ttl
func (cm *CacheManager) IsTranscriptFresh(sessionID string, ttl time.Duration) bool {
	info, err := os.Stat(cm.GetTranscriptPath(sessionID))
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) <= ttl
}

// LoadIndex loads the session index
func (cm *CacheManager) LoadIndex() (*SessionIndex, error) {
	data, err := os.ReadFile(cm.GetIndexPath())
	if err != nil {
		return nil, err
	}

	var index SessionIndex
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to unmarshal index: %w", err)
	}

	return &index, nil
}

// SaveIndex saves the session index
func (cm *CacheManager) SaveIndex(index *SessionIndex) error {
	if err := cm.EnsureCacheDir(); err != nil {
		return err
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("failed to marshal index: %w", err)
	}

	return os.WriteFile(cm.GetIndexPath(), data, 0644)
}

// SaveSummaries saves a freshly fetched session listing as the index
func (cm *CacheManager) SaveSummaries(summaries []SessionSummary, serverURL, agentID string) error {
	index := SessionIndex{
		Sessions: summaries,
		Metadata: CacheMetadata{
			ServerURL:    serverURL,
			AgentID:      agentID,
			CacheVersion: "1.0",
			FetchedAt:    time.Now(),
		},
	}
	return cm.SaveIndex(&index)
}

// SaveTranscript saves a transcript to its cache file
func (cm *CacheManager) SaveTranscript(transcript *Transcript) error {
	if err := cm.EnsureCacheDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	return os.WriteFile(cm.GetTranscriptPath(transcript.Session.ID), data, 0644)
}

// LoadTranscript loads a transcript from its cache file
func (cm *CacheManager) LoadTranscript(sessionID string) (*Transcript, error) {
	data, err := os.ReadFile(cm.GetTranscriptPath(sessionID))
	if err != nil {
		return nil, err
	}

	var transcript Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript: %w", err)
	}

	return &transcript, nil
}

// Stats returns the number of files and total bytes in the cache
func (cm *CacheManager) Stats() (int, int64, error) {
	entries, err := os.ReadDir(cm.cacheDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, nil
		}
		return 0, 0, err
	}

	var count int
	var size int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		count++
		size += info.Size()
	}

	return count, size, nil
}

// ClearCache removes the index and all cached transcripts
func (cm *CacheManager) ClearCache() error {
	transcripts, err := filepath.Glob(filepath.Join(cm.cacheDir, "transcript_*.json"))
	if err == nil {
		for _, path := range transcripts {
			_ = os.Remove(path)
		}
	}

	if err := os.Remove(cm.GetIndexPath()); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
