package injectable

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// myServiceType is the declared type most tests resolve.
type myServiceType interface {
	ID() uuid.UUID
	Text() string
}

type myService struct {
	id   uuid.UUID
	name string
}

func newMyService() *myService {
	return &myService{id: uuid.New(), name: "MyService"}
}

func (s *myService) ID() uuid.UUID { return s.id }
func (s *myService) Text() string  { return s.name }

type mockService struct {
	id   uuid.UUID
	name string
}

func newMockService() *mockService {
	return &mockService{id: uuid.New(), name: "MockService"}
}

func (s *mockService) ID() uuid.UUID { return s.id }
func (s *mockService) Text() string  { return s.name }

// counter counts factory invocations across goroutines.
type counter struct {
	n atomic.Int64
}

func (c *counter) inc()        { c.n.Add(1) }
func (c *counter) load() int64 { return c.n.Load() }

var (
	myServicePath = NewPath("myService", func(c *Container) myServiceType {
		return newMyService()
	})
	mockServicePath = NewPath("mockService", func(c *Container) myServiceType {
		return newMockService()
	})
	applicationServicePath = NewPath("applicationService", func(c *Container) myServiceType {
		return Scoped(c.Application(), func() myServiceType { return newMyService() })
	})
	cachedServicePath = NewPath("cachedService", func(c *Container) myServiceType {
		return Scoped(c.Cached(), func() myServiceType { return newMyService() })
	})
	sharedServicePath = NewPath("sharedService", func(c *Container) myServiceType {
		return Scoped(c.Shared(), func() myServiceType { return newMyService() })
	})
)

// services mirrors a consumer that declares its dependencies as accessors.
type services struct {
	service Injected[myServiceType]
	mock    Injected[myServiceType]
}

func newServices(c *Container) *services {
	return &services{
		service: InjectFrom(c, myServicePath),
		mock:    InjectFrom(c, mockServicePath),
	}
}
