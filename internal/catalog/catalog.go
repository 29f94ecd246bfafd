// Package catalog serves the selectable hardware component set and caches the
// user's current selection in the local store.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ideaforge/internal/store"
	"ideaforge/internal/types"
)

// keySelection is the namespaced local-store key caching the last selected
// component set.
const keySelection = "selected_components"

// Seed is the built-in component catalog, also the offline fallback when the
// remote store is unreachable.
var Seed = []types.Component{
	{ID: "arduino_uno", Name: "Arduino Uno", Category: "Microcontrollers", Description: "Popular microcontroller board", Availability: types.AvailabilityAvailable},
	{ID: "esp32", Name: "ESP32", Category: "Microcontrollers", Description: "WiFi and Bluetooth enabled microcontroller", Availability: types.AvailabilityAvailable},
	{ID: "led", Name: "LED", Category: "Display", Description: "Light Emitting Diode", Availability: types.AvailabilityAvailable},
	{ID: "servo_motor", Name: "Servo Motor", Category: "Actuators", Description: "Precise position control motor", Availability: types.AvailabilityAvailable},
	{ID: "ultrasonic_sensor", Name: "Ultrasonic Sensor", Category: "Sensors", Description: "Distance measurement sensor", Availability: types.AvailabilityAvailable},
	{ID: "temp_humidity", Name: "Temperature & Humidity Sensor", Category: "Sensors", Description: "DHT22 sensor for environmental monitoring", Availability: types.AvailabilityAvailable},
	{ID: "pir_sensor", Name: "PIR Motion Sensor", Category: "Sensors", Description: "Passive infrared motion detector", Availability: types.AvailabilityAvailable},
	{ID: "buzzer", Name: "Buzzer", Category: "Audio", Description: "Sound generating component", Availability: types.AvailabilityAvailable},
	{ID: "relay", Name: "Relay Module", Category: "Control", Description: "Switch for controlling high power devices", Availability: types.AvailabilityAvailable},
	{ID: "lcd_display", Name: "LCD Display", Category: "Display", Description: "16x2 character display", Availability: types.AvailabilityAvailable},
}

// Service reads components from the remote document store, degrading to the
// built-in seed list, and manages the cached selection.
type Service struct {
	remote store.Remote
	local  *store.Local
	logger *zap.Logger
}

// NewService creates a catalog service.
func NewService(remote store.Remote, local *store.Local, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{remote: remote, local: local, logger: logger}
}

// All returns every catalog component. When the remote store is unreachable
// or empty the built-in seed list is served instead.
func (s *Service) All(ctx context.Context) ([]types.Component, error) {
	records, err := s.remote.FetchAll(ctx, store.CollectionComponents)
	if err != nil {
		s.logger.Warn("component fetch failed, serving seed catalog", zap.Error(err))
		return append([]types.Component(nil), Seed...), nil
	}
	if len(records) == 0 {
		return append([]types.Component(nil), Seed...), nil
	}

	components := make([]types.Component, 0, len(records))
	for _, rec := range records {
		c, err := componentFromRecord(rec)
		if err != nil {
			s.logger.Debug("skipping undecodable component record", zap.Error(err))
			continue
		}
		components = append(components, c)
	}
	return components, nil
}

// ByID returns one component by identifier, checking the remote store first
// and the seed list second.
func (s *Service) ByID(ctx context.Context, id string) (types.Component, error) {
	if rec, err := s.remote.FetchByID(ctx, store.CollectionComponents, id); err == nil {
		if c, err := componentFromRecord(rec); err == nil {
			return c, nil
		}
	}
	for _, c := range Seed {
		if c.ID == id {
			return c, nil
		}
	}
	return types.Component{}, fmt.Errorf("component %q: %w", id, store.ErrNotFound)
}

// ByCategory filters the catalog by category, case-insensitively.
func (s *Service) ByCategory(ctx context.Context, category string) ([]types.Component, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []types.Component
	for _, c := range all {
		if strings.EqualFold(c.Category, category) {
			out = append(out, c)
		}
	}
	return out, nil
}

// SeedRemote pushes the built-in catalog into the remote store. Creates are
// independent CRUD writes, so they run with bounded parallelism.
func (s *Service) SeedRemote(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, c := range Seed {
		c := c
		g.Go(func() error {
			rec := recordFromComponent(c)
			if _, err := s.remote.Create(ctx, store.CollectionComponents, rec); err != nil {
				return fmt.Errorf("failed to seed component %q: %w", c.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// SaveSelection caches the current component selection locally.
func (s *Service) SaveSelection(components []types.Component) error {
	data, err := json.Marshal(components)
	if err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	if err := s.local.Put(keySelection, data); err != nil {
		return fmt.Errorf("failed to cache selection: %w", err)
	}
	return nil
}

// LoadSelection returns the cached component selection, or nil when no
// selection has been cached.
func (s *Service) LoadSelection() ([]types.Component, error) {
	data, ok, err := s.local.Get(keySelection)
	if err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var components []types.Component
	if err := json.Unmarshal(data, &components); err != nil {
		return nil, fmt.Errorf("failed to decode selection: %w", err)
	}
	return components, nil
}

func recordFromComponent(c types.Component) store.Record {
	data, _ := json.Marshal(c)
	var rec store.Record
	_ = json.Unmarshal(data, &rec)
	return rec
}

func componentFromRecord(rec store.Record) (types.Component, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return types.Component{}, err
	}
	var c types.Component
	if err := json.Unmarshal(data, &c); err != nil {
		return types.Component{}, err
	}
	return c, nil
}
