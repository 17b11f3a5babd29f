// Package monitor exposes a running Environment over HTTP so a long
// simulation can be watched while it runs: current time, dispatched
// entry count, a CPU profile, and host resource usage of the
// simulation process itself.
package monitor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	// Registers net/http/pprof's handlers on http.DefaultServeMux.
	_ "net/http/pprof"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/process"

	"github.com/gvwilson/asimpy/kernel"
)

// Server wraps an Environment and serves its live state over HTTP.
type Server struct {
	env        *kernel.Environment
	portNumber int

	dispatched int
}

// NewServer creates a Server watching env.
func NewServer(env *kernel.Environment) *Server {
	return &Server{env: env}
}

// WithPortNumber sets the port the Server listens on. Values below 1000
// are rejected, falling back to a random port instead.
func (s *Server) WithPortNumber(port int) *Server {
	if port < 1000 {
		fmt.Fprintf(os.Stderr,
			"port %d is not allowed for the monitoring server, using a random port instead\n", port)
		port = 0
	}
	s.portNumber = port
	return s
}

// ObserveDispatch implements kernel.Hook so the Server can count
// dispatched entries without the kernel depending on net/http.
func (s *Server) ObserveDispatch(ctx kernel.HookCtx) {
	if ctx.Pos == kernel.HookPosAfterEvent {
		s.dispatched++
	}
}

// Func implements kernel.Hook.
func (s *Server) Func(ctx kernel.HookCtx) { s.ObserveDispatch(ctx) }

// Start registers every route and begins serving in the background,
// returning the address it bound to.
func (s *Server) Start() string {
	r := mux.NewRouter()
	r.HandleFunc("/api/now", s.now)
	r.HandleFunc("/api/dispatched", s.dispatchedCount)
	r.HandleFunc("/api/profile", s.collectProfile)
	r.HandleFunc("/api/resources", s.listResources)

	addr := ":0"
	if s.portNumber >= 1000 {
		addr = ":" + strconv.Itoa(s.portNumber)
	}

	listener, err := net.Listen("tcp", addr)
	dieOnErr(err)

	boundAddr := listener.Addr().(*net.TCPAddr)
	fmt.Fprintf(os.Stderr, "monitoring simulation at http://localhost:%d\n", boundAddr.Port)

	go func() {
		dieOnErr(http.Serve(listener, r))
	}()

	return boundAddr.String()
}

func (s *Server) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%.10f}", s.env.Now())
}

func (s *Server) dispatchedCount(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"dispatched\":%d}", s.dispatched)
}

func (s *Server) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	dieOnErr(pprof.StartCPUProfile(buf))
	time.Sleep(time.Second)
	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	body, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(body)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (s *Server) listResources(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memInfo, err := proc.MemoryInfo()
	dieOnErr(err)

	body, err := json.Marshal(resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memInfo.RSS,
	})
	dieOnErr(err)

	_, err = w.Write(body)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		log.Panic(err)
	}
}
