package notification

import (
	"errors"
	"strconv"
)

// RGW topic attributes, see
// https://docs.ceph.com/en/latest/radosgw/notifications/#create-a-topic
const (
	attrAMQPExchange = "amqp-exchange"
	attrAMQPAckLevel = "amqp-ack-level"
	attrPushEndpoint = "push-endpoint"
	attrUseSSL       = "use-ssl"
	attrVerifySSL    = "verify-ssl"
	attrCALocation   = "ca-location"
)

var (
	ErrTopicNameEmpty = errors.New("topic name is empty")
	ErrExchangeEmpty  = errors.New("amqp exchange is empty")
	ErrAMQPURIEmpty   = errors.New("amqp URI is empty")
)

// AMQPTopicParams describes an AMQP-backed topic: events published to the
// topic are delivered to the named exchange at the given endpoint. The URI is
// host:port/vhost without a scheme; the scheme is derived from CALocation.
type AMQPTopicParams struct {
	Name       string
	Exchange   string
	AMQPURI    string
	CALocation string
	VerifySSL  bool
}

func (p AMQPTopicParams) validate() error {
	if p.Name == "" {
		return ErrTopicNameEmpty
	}
	if p.Exchange == "" {
		return ErrExchangeEmpty
	}
	if p.AMQPURI == "" {
		return ErrAMQPURIEmpty
	}
	return nil
}

func (p AMQPTopicParams) attributes() map[string]string {
	attributes := map[string]string{
		attrAMQPExchange: p.Exchange,
		attrAMQPAckLevel: "broker",
		attrUseSSL:       "true",
		attrVerifySSL:    strconv.FormatBool(p.VerifySSL),
	}
	if p.CALocation != "" {
		attributes[attrCALocation] = p.CALocation
		attributes[attrPushEndpoint] = "amqps://" + p.AMQPURI
	} else {
		attributes[attrPushEndpoint] = "amqp://" + p.AMQPURI
	}
	return attributes
}
