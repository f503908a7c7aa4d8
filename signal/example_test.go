package signal_test

import (
	"fmt"

	"github.com/xuenqlve/sigslot/signal"
)

type Message struct {
	From string
	Text string
}

type Inbox struct {
	unread int
}

func (i *Inbox) Receive(m Message) {
	i.unread++
	fmt.Printf("inbox: %d unread\n", i.unread)
}

func printMessage(m Message) {
	fmt.Printf("%s: %s\n", m.From, m.Text)
}

func ExampleSignal() {
	var received signal.Signal[Message]
	inbox := &Inbox{}
	received.Connect(printMessage)
	signal.ConnectMethod(&received, inbox, (*Inbox).Receive)

	received.Emit(Message{From: "ann", Text: "hello"})
	received.Disconnect(printMessage)
	received.Emit(Message{From: "bob", Text: "hi"})
	// Output:
	// ann: hello
	// inbox: 1 unread
	// inbox: 2 unread
}

func ExampleConnection_Disconnect() {
	sig := signal.New[string]()
	conn := sig.Connect(func(s string) { fmt.Println("got", s) })
	sig.Emit("first")
	conn.Disconnect()
	sig.Emit("second")
	// Output: got first
}
