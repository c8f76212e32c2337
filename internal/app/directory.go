package app

import (
	"fmt"
	"sync"

	"hotel_booking/internal/domain"
)

// CustomerDirectory maps names to customers created at runtime so the HTTP
// surface can address them. Names are unique; the trimmed name from the
// domain constructor is the key.
type CustomerDirectory struct {
	mu     sync.Mutex
	byName map[string]*domain.Customer
}

func NewCustomerDirectory() *CustomerDirectory {
	return &CustomerDirectory{byName: make(map[string]*domain.Customer)}
}

func (d *CustomerDirectory) Register(name string, budget float64) (*domain.Customer, error) {
	c, err := domain.NewCustomer(name, budget)
	if err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.byName[c.Name]; ok {
		return nil, fmt.Errorf("%w: customer %q already registered", domain.ErrInvalidState, c.Name)
	}
	d.byName[c.Name] = c
	return c, nil
}

func (d *CustomerDirectory) Get(name string) (*domain.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: customer %q", domain.ErrNotFound, name)
	}
	return c, nil
}
