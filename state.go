package macrostate

import (
	"context"
	"fmt"
	"time"
)

// State provides the build-state API on top of Store.
//
// Every operation addresses storage through the state's epoch, so values
// written during one build run are visible to later calls in the same run
// and invisible to any other run. State keeps no in-memory copy of values;
// each call reads or writes through to the store.
type State struct {
	store    Store
	epoch    string
	observer Observer
}

// NewState binds the build-state API to a concrete store, scoped to the
// process-wide epoch.
//
// Example: state from store
//
//	ctx := context.Background()
//	s := macrostate.NewState(macrostate.NewMemoryStore(ctx))
//	fmt.Println(s.Driver()) // memory
func NewState(store Store) *State {
	return NewStateWithEpoch(store, ProcessEpoch())
}

// NewStateWithEpoch lets callers substitute their own epoch identifier, for
// build systems that can hand out a unique id per run and want stronger
// isolation than a clock reading.
func NewStateWithEpoch(store Store, epoch string) *State {
	if epoch == "" {
		epoch = ProcessEpoch()
	}
	return &State{
		store: store,
		epoch: epoch,
	}
}

// WithObserver attaches an observer to receive operation events.
func (s *State) WithObserver(o Observer) *State {
	s.observer = o
	return s
}

// Store returns the underlying store implementation.
func (s *State) Store() Store {
	return s.store
}

// Driver reports the underlying store driver.
func (s *State) Driver() Driver {
	return s.store.Driver()
}

// Epoch returns the epoch identifier scoping this state.
func (s *State) Epoch() string {
	return s.epoch
}

// Location returns the storage name used for key under this state's epoch.
// Two states with the same epoch always resolve a key to the same location;
// states with different epochs never collide. The key is embedded verbatim,
// so characters the backend cannot store in a name are the caller's
// responsibility. You should never need this directly unless you know what
// you're doing.
func (s *State) Location(key string) string {
	return statePrefix + key + "_" + s.epoch
}

// Write stores value verbatim under key, creating or wholesale overwriting
// any prior value.
//
// Example: write then read
//
//	ctx := context.Background()
//	s := macrostate.NewState(macrostate.NewMemoryStore(ctx))
//	_ = s.Write("version", "v2")
//	v, _ := s.Read("version")
//	fmt.Println(v) // v2
func (s *State) Write(key, value string) error {
	return s.WriteCtx(context.Background(), key, value)
}

func (s *State) WriteCtx(ctx context.Context, key, value string) error {
	start := time.Now()
	err := s.store.Set(ctx, s.Location(key), []byte(value))
	s.observe(ctx, "write", key, err == nil, err, start)
	return err
}

// Read returns the exact bytes stored for key, or an error wrapping
// ErrNotFound when no value exists under the current epoch.
func (s *State) Read(key string) (string, error) {
	return s.ReadCtx(context.Background(), key)
}

func (s *State) ReadCtx(ctx context.Context, key string) (string, error) {
	start := time.Now()
	body, ok, err := s.store.Get(ctx, s.Location(key))
	if err != nil {
		s.observe(ctx, "read", key, false, err, start)
		return "", err
	}
	if !ok {
		err := fmt.Errorf("state %q: %w", key, ErrNotFound)
		s.observe(ctx, "read", key, false, err, start)
		return "", err
	}
	s.observe(ctx, "read", key, true, nil, start)
	return string(body), nil
}

// Has reports whether a value exists for key. It is a read-and-discard
// probe: any failure, not only a missing value, reports false.
func (s *State) Has(key string) bool {
	return s.HasCtx(context.Background(), key)
}

func (s *State) HasCtx(ctx context.Context, key string) bool {
	start := time.Now()
	_, ok, err := s.store.Get(ctx, s.Location(key))
	found := ok && err == nil
	s.observe(ctx, "has", key, found, err, start)
	return found
}

// Clear removes the value for key if present. It never reports failure:
// absence is not an error and removal errors are discarded, so it is safe
// to call speculatively. Callers only rely on Has being false afterwards.
func (s *State) Clear(key string) {
	s.ClearCtx(context.Background(), key)
}

func (s *State) ClearCtx(ctx context.Context, key string) {
	start := time.Now()
	err := s.store.Delete(ctx, s.Location(key))
	s.observe(ctx, "clear", key, err == nil, err, start)
}

// Init returns the existing value for key if one exists, ignoring the
// default. Otherwise it writes defaultValue and returns it.
//
// Example: first writer wins
//
//	ctx := context.Background()
//	s := macrostate.NewState(macrostate.NewMemoryStore(ctx))
//	v, _ := s.Init("mode", "debug")
//	fmt.Println(v) // debug
//	v, _ = s.Init("mode", "release")
//	fmt.Println(v) // debug
func (s *State) Init(key, defaultValue string) (string, error) {
	return s.InitCtx(context.Background(), key, defaultValue)
}

func (s *State) InitCtx(ctx context.Context, key, defaultValue string) (string, error) {
	start := time.Now()
	body, ok, err := s.store.Get(ctx, s.Location(key))
	if err == nil && ok {
		s.observe(ctx, "init", key, true, nil, start)
		return string(body), nil
	}
	if err := s.store.Set(ctx, s.Location(key), []byte(defaultValue)); err != nil {
		s.observe(ctx, "init", key, false, err, start)
		return "", err
	}
	s.observe(ctx, "init", key, false, nil, start)
	return defaultValue, nil
}

// Append adds fragment as the next item of the list stored under key.
// Literal newlines in fragment are escaped to the two-character sequence
// `\n`, then fragment plus a trailing newline is appended in
// create-if-absent mode, never truncating existing content. Appending is
// cheaper than rewriting the whole value through Write.
//
// Mixing Write and Append on one key without an intervening Clear leaves
// the next Append building on whatever scalar content Write left behind.
func (s *State) Append(key, fragment string) error {
	return s.AppendCtx(context.Background(), key, fragment)
}

func (s *State) AppendCtx(ctx context.Context, key, fragment string) error {
	start := time.Now()
	encoded := escapeItem(fragment) + itemSeparator
	err := s.store.Append(ctx, s.Location(key), []byte(encoded))
	s.observe(ctx, "append", key, err == nil, err, start)
	return err
}

// ReadList decodes the value under key as an ordered list of items written
// by Append. It never fails: a missing key, like any read error, is treated
// as a list not yet started and yields an empty result.
//
// Example: accumulate a list
//
//	ctx := context.Background()
//	s := macrostate.NewState(macrostate.NewMemoryStore(ctx))
//	_ = s.Append("impls", "first")
//	_ = s.Append("impls", "second")
//	fmt.Println(s.ReadList("impls")) // [first second]
func (s *State) ReadList(key string) []string {
	return s.ReadListCtx(context.Background(), key)
}

func (s *State) ReadListCtx(ctx context.Context, key string) []string {
	start := time.Now()
	body, ok, err := s.store.Get(ctx, s.Location(key))
	if err != nil || !ok {
		s.observe(ctx, "read_list", key, false, err, start)
		return nil
	}
	s.observe(ctx, "read_list", key, true, nil, start)
	return decodeList(string(body))
}

// Flush removes every state entry the store holds, across all epochs.
// Intended for build tooling that wants a clean slate; the core store never
// garbage-collects stale epochs on its own.
func (s *State) Flush() error {
	return s.FlushCtx(context.Background())
}

func (s *State) FlushCtx(ctx context.Context) error {
	start := time.Now()
	err := s.store.Flush(ctx)
	s.observe(ctx, "flush", "", err == nil, err, start)
	return err
}

func (s *State) observe(ctx context.Context, op, key string, hit bool, err error, start time.Time) {
	if s.observer == nil {
		return
	}
	s.observer.OnStateOp(ctx, op, key, hit, err, time.Since(start), s.store.Driver())
}
