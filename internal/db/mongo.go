package db

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/sync/singleflight"

	apperrors "scholarhub/internal/errors"
)

const (
	// DatabaseName is the database every collection lives in.
	DatabaseName = "scholarhubDB"

	UsersCollection        = "users"
	ScholarshipsCollection = "scholarships"
	ReviewsCollection      = "reviews"
	ApplicationsCollection = "applications"
)

// Options configures how the client dials the cluster.
type Options struct {
	URI            string
	ConnectTimeout time.Duration
	SocketTimeout  time.Duration
	MaxPoolSize    uint64
}

// Connection is a live client plus the named collections handlers use.
type Connection struct {
	Client       *mongo.Client
	Database     *mongo.Database
	Users        *mongo.Collection
	Scholarships *mongo.Collection
	Reviews      *mongo.Collection
	Applications *mongo.Collection
}

// NewConnection binds the fixed collection names on client.
func NewConnection(client *mongo.Client) *Connection {
	database := client.Database(DatabaseName)
	return &Connection{
		Client:       client,
		Database:     database,
		Users:        database.Collection(UsersCollection),
		Scholarships: database.Collection(ScholarshipsCollection),
		Reviews:      database.Collection(ReviewsCollection),
		Applications: database.Collection(ApplicationsCollection),
	}
}

// Provider hands out the shared connection, establishing it if needed.
type Provider interface {
	Ensure(ctx context.Context) (*Connection, error)
}

// DialFunc establishes a new connection.
type DialFunc func(ctx context.Context) (*Connection, error)

// Dial returns a DialFunc that connects with opts and pings the primary.
func Dial(opts Options) DialFunc {
	return func(ctx context.Context) (*Connection, error) {
		if opts.URI == "" {
			return nil, fmt.Errorf("mongo: empty connection string")
		}
		timeout := opts.ConnectTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		// The dial outlives the request that triggered it.
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*timeout)
		defer cancel()

		clientOpts := options.Client().ApplyURI(opts.URI).
			SetConnectTimeout(timeout).
			SetServerSelectionTimeout(timeout).
			SetSocketTimeout(opts.SocketTimeout).
			SetMaxPoolSize(opts.MaxPoolSize)

		client, err := mongo.Connect(ctx, clientOpts)
		if err != nil {
			return nil, fmt.Errorf("mongo: connect: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo: ping: %w", err)
		}
		return NewConnection(client), nil
	}
}

// Status is a snapshot of the manager for health and diagnostics.
type Status struct {
	Connected   bool      `json:"connected"`
	Attempts    int       `json:"attempts"`
	LastError   string    `json:"lastError,omitempty"`
	LastAttempt time.Time `json:"lastAttempt,omitempty"`
}

// Manager lazily establishes one Connection and shares it across requests.
// A failed attempt is not cached: the next Ensure dials again.
type Manager struct {
	dial  DialFunc
	log   *slog.Logger
	group singleflight.Group

	mu          sync.Mutex
	conn        *Connection
	attempts    int
	lastErr     error
	lastAttempt time.Time
}

var _ Provider = (*Manager)(nil)

// NewManager creates a manager that dials with dial on first use.
func NewManager(dial DialFunc, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{dial: dial, log: log}
}

// Ensure returns the shared connection. Callers arriving while a dial is in
// flight wait for it and share its outcome, failure included.
func (m *Manager) Ensure(ctx context.Context) (*Connection, error) {
	if conn := m.current(); conn != nil {
		return conn, nil
	}

	v, err, _ := m.group.Do("connect", func() (interface{}, error) {
		return m.connect(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNotReady, err)
	}
	return v.(*Connection), nil
}

func (m *Manager) current() *Connection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.conn
}

// connect runs one dial without holding mu, so Status stays responsive.
func (m *Manager) connect(ctx context.Context) (*Connection, error) {
	m.mu.Lock()
	if m.conn != nil {
		conn := m.conn
		m.mu.Unlock()
		return conn, nil
	}
	m.attempts++
	attempt := m.attempts
	m.lastAttempt = time.Now()
	m.mu.Unlock()

	conn, err := m.dial(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.lastErr = err
		m.log.Warn("database connection failed", "attempt", attempt, "error", err)
		return nil, err
	}
	m.conn = conn
	m.lastErr = nil
	m.log.Info("database connected", "database", DatabaseName, "attempt", attempt)
	return conn, nil
}

// Status reports whether a connection exists and the outcome of the last attempt.
func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := Status{
		Connected:   m.conn != nil,
		Attempts:    m.attempts,
		LastAttempt: m.lastAttempt,
	}
	if m.lastErr != nil {
		st.LastError = m.lastErr.Error()
	}
	return st
}

// Close disconnects the shared client, if any.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn == nil || m.conn.Client == nil {
		return nil
	}
	err := m.conn.Client.Disconnect(ctx)
	m.conn = nil
	return err
}

// Static is a Provider around an already established connection.
type Static struct {
	Conn *Connection
}

// Ensure returns the wrapped connection.
func (s Static) Ensure(context.Context) (*Connection, error) {
	return s.Conn, nil
}
