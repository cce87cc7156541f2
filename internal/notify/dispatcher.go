package notify

import "log"

// Email is a fully rendered message waiting to be sent.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers one message. The SMTP mailer implements it.
type Sender interface {
	Send(to, subject, body string) error
}

// Dispatcher decouples email delivery from request handling: lifecycle
// operations enqueue and move on, a background worker talks to SMTP. A
// full queue drops the message rather than blocking the API.
type Dispatcher struct {
	sender Sender
	queue  chan Email
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Email, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for e := range d.queue {
		if d.sender == nil {
			log.Printf("mail not configured, dropping %q to %s", e.Subject, e.To)
			continue
		}
		if err := d.sender.Send(e.To, e.Subject, e.Body); err != nil {
			log.Printf("mail send failed for %s: %v", e.To, err)
		}
	}
}

func (d *Dispatcher) Dispatch(e Email) {
	select {
	case d.queue <- e:
	default:
		log.Println("mail queue full, dropping email")
	}
}
