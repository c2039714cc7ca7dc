package shell

import (
	"embed"
	"errors"
)

//go:embed helptext/*.txt
var helptext embed.FS

func usage(topic string) (*Response, error) {
	dat, err := helptext.ReadFile("helptext/" + topic + ".txt")
	if err != nil {
		return nil, errors.New("there is no help text for the topic " + topic)
	}
	return msg(string(dat)), nil
}
