package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("store: invalid credentials")

	// ErrEmailTaken is returned when signing up with an existing email.
	ErrEmailTaken = errors.New("store: email already registered")

	// ErrInsufficientPoints is returned when redeeming a reward the user
	// cannot afford.
	ErrInsufficientPoints = errors.New("store: insufficient referral points")
)

// Store holds the whole dataset behind one mutex. Slices keep insertion
// order; lookups that need it go through the maps.
type Store struct {
	mu       sync.Mutex
	users    map[string]*User
	analyses []*Analysis
	lessons  []*Lesson
	quizzes  map[string]map[string]*QuizResult // userID -> lessonID -> result
	posts    []*Post
	replies  map[string]*Reply
	bookings []*Booking
	rewards  []*Reward
	coupons  map[string]int
	diet     DietPlan
	tips     []string
	tipIndex int
}

// New creates a store populated from the embedded seed fixture.
func New() (*Store, error) {
	s := &Store{
		users:   make(map[string]*User),
		quizzes: make(map[string]map[string]*QuizResult),
		replies: make(map[string]*Reply),
		coupons: make(map[string]int),
	}
	if err := s.loadSeed(seedData); err != nil {
		return nil, err
	}
	return s, nil
}

// Authenticate checks credentials and returns the matching user.
func (s *Store) Authenticate(email, password string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := s.userByEmail(email)
	if u == nil {
		return User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return *u, nil
}

// CreateUser registers a new account on the Free plan.
func (s *Store) CreateUser(name, email, password string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.userByEmail(email) != nil {
		return User{}, ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("store: hash password: %w", err)
	}

	u := &User{
		ID:           "user-" + uuid.NewString(),
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		Plan:         PlanFree,
	}
	s.users[u.ID] = u
	return *u, nil
}

// UserByID returns the user with the given ID.
func (s *Store) UserByID(id string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return *u, nil
}

// userByEmail finds a user by email, case-insensitively. Callers hold s.mu.
func (s *Store) userByEmail(email string) *User {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u
		}
	}
	return nil
}
