package battle

import "sync"

// fakeSender records emitted intents for assertions
type fakeSender struct {
	mu       sync.Mutex
	emitted  []fakeIntent
	failWith error
}

type fakeIntent struct {
	event   string
	payload any
}

func (f *fakeSender) Emit(event string, payload any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	f.emitted = append(f.emitted, fakeIntent{event: event, payload: payload})
	return nil
}

func (f *fakeSender) intents() []fakeIntent {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]fakeIntent, len(f.emitted))
	copy(out, f.emitted)
	return out
}

// fakeIdentity resolves on demand, mimicking the async auth store
type fakeIdentity struct {
	mu sync.Mutex
	id string
}

func (f *fakeIdentity) PlayerID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.id
}

func (f *fakeIdentity) resolve(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.id = id
}
