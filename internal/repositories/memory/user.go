package memory

import (
	"coinkeep/internal/models"
	"coinkeep/internal/repositories"
)

// Users returns the user repository view of the store.
func (s *Store) Users() repositories.UserRepository {
	return &userStore{s: s}
}

type userStore struct {
	s *Store
}

func (r *userStore) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	c := *user
	r.s.users[user.APIKey] = &c
	return nil
}

func (r *userStore) GetByAPIKey(apiKey string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[apiKey]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	c := *user
	return &c, nil
}

func (r *userStore) GetByEmail(email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *userStore) Delete(apiKey string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[apiKey]; !ok {
		return repositories.ErrUserNotFound
	}
	delete(r.s.users, apiKey)
	return nil
}

func (r *userStore) List() ([]*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*models.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		c := *u
		users = append(users, &c)
	}
	return users, nil
}
