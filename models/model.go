package models

// Model is the contract shared by the in-memory item registries.
type Model[Item any, Input any] interface {
	Create(input Input) (Item, error)
	List() []Item
	FindByID(itemID int) (Item, bool)
	Update(itemID int, input Input) (Item, error)
	Delete(itemID int) (Item, error)
}
