package core

// EntityID is a unique identifier for game entities. 0 is never issued
// and doubles as the "no entity" sentinel.
type EntityID uint64

// Component is a marker interface for all components
type Component interface {
	Type() ComponentType
}

// ComponentType identifies the type of component
type ComponentType uint32

const (
	CompPosition ComponentType = iota
	CompHealth
	CompMovable
	CompEnemy
	CompTower
	CompWeapon
	CompProjectile
	CompMax
)

// World holds all entities and their components. Iteration order is
// spawn order (ascending id), so queries are deterministic and ties in
// the systems resolve to the earliest-spawned entity.
type World struct {
	entities  map[EntityID]map[ComponentType]Component
	order     []EntityID
	systems   []System
	nextID    uint64
	TickCount uint64
}

// System processes entities each tick
type System interface {
	Update(w *World)
	Priority() int
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		entities: make(map[EntityID]map[ComponentType]Component),
	}
}

// Spawn creates a new entity and returns its ID
func (w *World) Spawn() EntityID {
	w.nextID++
	id := EntityID(w.nextID)
	w.entities[id] = make(map[ComponentType]Component)
	w.order = append(w.order, id)
	return id
}

// Attach adds a component to an entity
func (w *World) Attach(id EntityID, c Component) {
	if comps, ok := w.entities[id]; ok {
		comps[c.Type()] = c
	}
}

// Detach removes a component from an entity
func (w *World) Detach(id EntityID, ct ComponentType) {
	if comps, ok := w.entities[id]; ok {
		delete(comps, ct)
	}
}

// Get returns a component for an entity, or nil
func (w *World) Get(id EntityID, ct ComponentType) Component {
	if comps, ok := w.entities[id]; ok {
		return comps[ct]
	}
	return nil
}

// Has checks if an entity has a component
func (w *World) Has(id EntityID, ct ComponentType) bool {
	if comps, ok := w.entities[id]; ok {
		_, exists := comps[ct]
		return exists
	}
	return false
}

// Alive reports whether the entity still exists
func (w *World) Alive(id EntityID) bool {
	_, ok := w.entities[id]
	return ok
}

// Remove deletes an entity immediately. Systems iterate over Query
// snapshots, so removing during a pass is safe and the removal is
// visible to every later lookup in the same tick.
func (w *World) Remove(id EntityID) {
	if _, ok := w.entities[id]; !ok {
		return
	}
	delete(w.entities, id)
	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Query returns a snapshot of all entity IDs that have ALL specified
// component types, in spawn order.
func (w *World) Query(types ...ComponentType) []EntityID {
	var result []EntityID
	for _, id := range w.order {
		comps := w.entities[id]
		match := true
		for _, t := range types {
			if _, ok := comps[t]; !ok {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}

// AddSystem registers a system
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	// Sort by priority (simple insertion)
	for i := len(w.systems) - 1; i > 0; i-- {
		if w.systems[i].Priority() < w.systems[i-1].Priority() {
			w.systems[i], w.systems[i-1] = w.systems[i-1], w.systems[i]
		}
	}
}

// Tick advances the counter and runs all systems once, in priority order
func (w *World) Tick() {
	w.TickCount++
	for _, s := range w.systems {
		s.Update(w)
	}
}

// Clear removes every entity and rewinds the tick and id counters.
// Registered systems stay in place.
func (w *World) Clear() {
	w.entities = make(map[EntityID]map[ComponentType]Component)
	w.order = w.order[:0]
	w.nextID = 0
	w.TickCount = 0
}

// EntityCount returns the number of alive entities
func (w *World) EntityCount() int {
	return len(w.entities)
}
