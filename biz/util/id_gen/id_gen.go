package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"venue_tracker/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

func init() {
	idgen = NewIDGenerator(10)
}

// NewID returns a log id: base36 millis, host ipv4 hex, pid and a random suffix.
func NewID() string {
	return idgen.NewID()
}

var idgen *IDGenerator

type IDGenerator struct {
	pool <-chan string
	stop chan any
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan any)
	return &IDGenerator{
		pool: newPool(maxSize, stop, ip.IPv4Hex()),
		stop: stop,
	}
}

func (idgen *IDGenerator) Stop() {
	select {
	case <-idgen.stop:
	default:
		close(idgen.stop)
	}
}

func (idgen *IDGenerator) NewID() string {
	return <-idgen.pool
}

func newPool(size int, stop chan any, hostHex string) <-chan string {
	pool := make(chan string, size)
	pid := strconv.FormatUint(uint64(os.Getpid()), 10)

	go func() {
		for {
			sb := strings.Builder{}
			sb.WriteString(strconv.FormatUint(uint64(time.Now().UnixMilli()), 36))
			sb.WriteString(hostHex)
			sb.WriteString(pid)
			sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))

			select {
			case <-stop:
				return
			case pool <- sb.String():
			}
		}
	}()

	return pool
}
