package core

// Entity is a unique identifier for an entity
// Zero is never issued and marks an unset reference
type Entity uint64
