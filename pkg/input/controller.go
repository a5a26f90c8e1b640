package input

// Event is a key going down or up
type Event struct {
	Key  Key
	Down bool
}

// Listener receives key events
type Listener func(Event)

// KeySource delivers key events to subscribers. The returned function
// removes the subscription.
type KeySource interface {
	Subscribe(l Listener) (unsubscribe func())
}

// Controller tracks held keys from a KeySource and maps them to commands.
// It must be closed to release its subscription.
type Controller struct {
	settings    Settings
	held        Held
	pressed     Held
	// look follows the last look key pressed, releasing either recenters
	look        float64
	unsubscribe func()
}

func NewController(settings Settings) *Controller {
	return &Controller{settings: settings}
}

// Attach starts listening to src, replacing any earlier source
func (c *Controller) Attach(src KeySource) {
	c.Close()
	c.unsubscribe = src.Subscribe(c.handle)
}

// Close stops listening and forgets held keys
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.held = Held{}
	c.pressed = Held{}
	c.look = 0
}

func (c *Controller) handle(e Event) {
	if e.Key < 0 || e.Key >= numKeys {
		return
	}
	if e.Down && !c.held[e.Key] {
		c.pressed[e.Key] = true
	}
	c.held[e.Key] = e.Down

	switch {
	case e.Key != LookLeft && e.Key != LookRight:
	case !e.Down:
		c.look = 0
	case e.Key == LookLeft:
		c.look = c.settings.LookMagnitude
	default:
		c.look = -c.settings.LookMagnitude
	}
}

// Held returns a copy of the keys currently down
func (c *Controller) Held() Held {
	return c.held
}

// IsHeld reports whether k is down
func (c *Controller) IsHeld(k Key) bool {
	return c.held[k]
}

// JustPressed reports whether k went down since the last EndFrame
func (c *Controller) JustPressed(k Key) bool {
	return c.pressed[k]
}

// EndFrame clears the just-pressed edges
func (c *Controller) EndFrame() {
	c.pressed = Held{}
}

// Command maps the held keys with the controller's settings. The look
// offset comes from the key events rather than the held set.
func (c *Controller) Command() Command {
	cmd := c.settings.Map(c.held)
	cmd.LookOffset = c.look
	return cmd
}

// Queue is a KeySource fed by direct calls, used for scripted input
type Queue struct {
	listeners map[int]Listener
	next      int
}

func NewQueue() *Queue {
	return &Queue{listeners: make(map[int]Listener)}
}

func (q *Queue) Subscribe(l Listener) func() {
	id := q.next
	q.next++
	q.listeners[id] = l
	return func() {
		delete(q.listeners, id)
	}
}

// Subscribers is the number of live subscriptions
func (q *Queue) Subscribers() int {
	return len(q.listeners)
}

func (q *Queue) Press(k Key) {
	q.dispatch(Event{Key: k, Down: true})
}

func (q *Queue) Release(k Key) {
	q.dispatch(Event{Key: k, Down: false})
}

func (q *Queue) dispatch(e Event) {
	for _, l := range q.listeners {
		l(e)
	}
}
