package connectfour

import "github.com/rocketscienceinc/connectfour-backend/internal/entity"

// Observer receives one Move per accepted turn, after the game state has been updated.
// An observer must not call TakeTurn on the game that notifies it.
type Observer func(move entity.Move)

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id   uint64
	list *observers
}

// Unsubscribe - stops delivery to the observer. Calling it more than once is a no-op.
func (that Subscription) Unsubscribe() {
	if that.list == nil {
		return
	}

	that.list.remove(that.id)
}

type subscriber struct {
	id       uint64
	observer Observer
}

type observers struct {
	nextID uint64
	list   []subscriber
}

// Subscribe - registers observer for move notifications; delivery follows subscription order.
func (that *Game) Subscribe(observer Observer) Subscription {
	if observer == nil {
		return Subscription{}
	}

	return that.observers.add(observer)
}

func (that *observers) add(observer Observer) Subscription {
	that.nextID++
	that.list = append(that.list, subscriber{id: that.nextID, observer: observer})

	return Subscription{id: that.nextID, list: that}
}

func (that *observers) remove(id uint64) {
	for i, sub := range that.list {
		if sub.id == id {
			// copy-on-write so an in-flight notify keeps iterating over its own slice
			list := make([]subscriber, 0, len(that.list)-1)
			list = append(list, that.list[:i]...)
			that.list = append(list, that.list[i+1:]...)
			return
		}
	}
}

func (that *observers) notify(move entity.Move) {
	list := that.list[:len(that.list):len(that.list)]
	for _, sub := range list {
		sub.observer(move)
	}
}
