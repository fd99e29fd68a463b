package bus

import "context"

type Publisher interface {
	Publish(ReplyJob)
}

type Subscriber interface {
	Consume(context.Context) (ReplyJob, bool)
}

type Broker interface {
	Publisher
	Subscriber
	Close()
}
