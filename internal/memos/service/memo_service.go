package service

import (
	"errors"
	"strconv"
	"strings"

	"memo/internal/logs"
	"memo/internal/memos/data"
)

var (
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrInvalidSelection = errors.New("invalid selection")
)

// Entry is a memo together with its body, as shown on the root page.
type Entry struct {
	data.Memo
	Content string
}

// MemoService defines the memo operations shared by the menu, the CLI and
// the HTTP handler.
type MemoService interface {
	List() ([]data.Memo, error)
	Get(id string) (string, error)
	Create(title, content string) (*data.Memo, error)
	Delete(id string) (bool, error)
	Entries() ([]Entry, error)
}

type memoServiceImpl struct {
	store *data.Store
}

// NewMemoService creates a MemoService backed by store.
func NewMemoService(store *data.Store) MemoService {
	return &memoServiceImpl{store: store}
}

func (s *memoServiceImpl) List() ([]data.Memo, error) {
	return s.store.List()
}

func (s *memoServiceImpl) Get(id string) (string, error) {
	return s.store.Read(id)
}

func (s *memoServiceImpl) Create(title, content string) (*data.Memo, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	id, err := s.store.Create(title, content)
	if err != nil {
		return nil, err
	}

	title, stamp := data.ParseFilename(id)
	return &data.Memo{
		ID:    id,
		Title: title,
		Stamp: stamp,
		Size:  int64(len(content)),
	}, nil
}

func (s *memoServiceImpl) Delete(id string) (bool, error) {
	return s.store.Delete(id)
}

// Entries lists the memos and loads each body. Memos removed between the
// listing and the read are left out.
func (s *memoServiceImpl) Entries() ([]Entry, error) {
	memos, err := s.store.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(memos))
	for _, m := range memos {
		content, err := s.store.Read(m.ID)
		if err != nil {
			if errors.Is(err, data.ErrNotFound) {
				logs.Logger.Debugw("memo vanished during listing", "id", m.ID)
				continue
			}
			return nil, err
		}
		entries = append(entries, Entry{Memo: m, Content: content})
	}
	return entries, nil
}

// ValidateTitle rejects titles that are empty after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// ValidateContent rejects bodies that are empty after trimming.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// SelectByIndex picks a memo by the 1-based number the user typed.
func SelectByIndex(memos []data.Memo, input string) (data.Memo, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < 1 || n > len(memos) {
		return data.Memo{}, ErrInvalidSelection
	}
	return memos[n-1], nil
}
