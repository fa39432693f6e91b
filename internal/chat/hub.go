package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/ADSorokin/ShopMaster/internal/domain"
	"github.com/gorilla/websocket"
)

// DefaultReplyDelay is how long the simulated support bot waits before
// answering a user message.
const DefaultReplyDelay = time.Second

const greetingRU = "Здравствуйте! Чем могу помочь?"
const greetingEN = "Hello! How can I help you?"

const autoReplyRU = "Спасибо за ваше сообщение! Наш менеджер свяжется с вами в ближайшее время."
const autoReplyEN = "Thank you for your message! Our manager will contact you shortly."

// Message is a chat widget message on the wire.
type Message struct {
	Sender string `json:"sender"` // user or bot
	Text   string `json:"text"`
	Time   string `json:"time"`
}

// inbound is what the widget sends: the text plus the UI language.
type inbound struct {
	Text string          `json:"text"`
	Lang domain.Language `json:"lang"`
}

// Client is one connected chat widget.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans chat messages out to the connected widgets and schedules the
// simulated bot replies. Replies pending when Stop is called are cancelled,
// so a teardown during the delay cannot fire into a dead hub.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	stop       chan struct{}

	replyDelay time.Duration

	mu     sync.Mutex
	timers map[*time.Timer]bool
	done   bool
}

func NewHub(replyDelay time.Duration) *Hub {
	if replyDelay <= 0 {
		replyDelay = DefaultReplyDelay
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 8),
		stop:       make(chan struct{}),
		replyDelay: replyDelay,
		timers:     make(map[*time.Timer]bool),
	}
}

// Run processes registrations and broadcasts until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true

		case c := <-h.unregister:
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}

		case data := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					// Slow consumer, drop it.
					delete(h.clients, c)
					close(c.Send)
				}
			}

		case <-h.stop:
			for c := range h.clients {
				delete(h.clients, c)
				close(c.Send)
			}
			return
		}
	}
}

// Stop shuts the hub down and cancels any pending bot replies.
func (h *Hub) Stop() {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return
	}
	h.done = true
	for t := range h.timers {
		t.Stop()
	}
	h.timers = nil
	h.mu.Unlock()

	close(h.stop)
}

// HandleUserMessage broadcasts the user's message and schedules the
// localized bot auto-reply.
func (h *Hub) HandleUserMessage(text string, lang domain.Language) {
	if text == "" {
		return
	}
	h.send(Message{Sender: "user", Text: text, Time: clock()})

	reply := autoReplyRU
	if lang == domain.LangEN {
		reply = autoReplyEN
	}

	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return
	}
	var timer *time.Timer
	timer = time.AfterFunc(h.replyDelay, func() {
		h.mu.Lock()
		delete(h.timers, timer)
		done := h.done
		h.mu.Unlock()
		if done {
			return
		}
		h.send(Message{Sender: "bot", Text: reply, Time: clock()})
	})
	h.timers[timer] = true
	h.mu.Unlock()
}

func (h *Hub) send(m Message) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("chat marshal error: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.stop:
	}
}

// Greeting returns the initial bot message shown when the widget opens.
func Greeting(lang domain.Language) Message {
	text := greetingRU
	if lang == domain.LangEN {
		text = greetingEN
	}
	return Message{Sender: "bot", Text: text, Time: clock()}
}

func clock() string {
	return time.Now().Format("15:04")
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// ServeWS upgrades the request and attaches the widget to the hub. The UI
// language comes from the ?lang query parameter.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("chat upgrade error: %v", err)
		return
	}

	lang := domain.Language(r.URL.Query().Get("lang"))
	client := &Client{Conn: conn, Send: make(chan []byte, 16)}
	h.register <- client

	// Greet the widget right away, bypassing the room broadcast.
	if data, err := json.Marshal(Greeting(lang)); err == nil {
		client.Send <- data
	}

	go client.writePump()
	go client.readPump(h, lang)
}

func (c *Client) readPump(h *Hub, lang domain.Language) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.stop:
		}
		c.Conn.Close()
	}()

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}
		var in inbound
		if err := json.Unmarshal(data, &in); err != nil {
			log.Printf("chat decode error: %v", err)
			continue
		}
		if in.Lang == "" {
			in.Lang = lang
		}
		h.HandleUserMessage(in.Text, in.Lang)
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for data := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
