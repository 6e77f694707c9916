package process

import (
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v3/process"
)

type AlreadyRunningError struct {
	PID int
}

func (e *AlreadyRunningError) Error() string {
	return fmt.Sprintf("walletui is already running with PID %d", e.PID)
}

func Exists(pid int) (bool, error) {
	if pid <= 0 {
		return false, nil
	}
	exists, err := process.PidExists(int32(pid))
	if err != nil {
		return false, fmt.Errorf("failed to check process %d: %w", pid, err)
	}
	return exists, nil
}

// EnsureSingleInstance fails when recordedPID is a live process other than
// the current one. A PID that cannot be checked is treated as stale.
func EnsureSingleInstance(recordedPID int) error {
	if recordedPID <= 0 || recordedPID == os.Getpid() {
		return nil
	}
	alive, err := Exists(recordedPID)
	if err != nil || !alive {
		return nil
	}
	return &AlreadyRunningError{PID: recordedPID}
}
