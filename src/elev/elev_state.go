package elev

// StartRegistryMgr starts the goroutine that serializes access to the registry.
func StartRegistryMgr(registry *Registry) *RegistryMgr {
	mgr := &RegistryMgr{
		cmds: make(chan RegistryCmd),
		quit: make(chan struct{}),
		exit: make(chan struct{}),
	}
	go func() {
		defer close(mgr.exit)
		for {
			select {
			case cmd := <-mgr.cmds:
				cmd.Exec(registry)
				close(cmd.done)
			case <-mgr.quit:
				return
			}
		}
	}()
	return mgr
}

// Execute runs exec on the manager goroutine and waits for it to finish.
// Commands never interleave, so exec sees and leaves the registry consistent.
func (mgr *RegistryMgr) Execute(exec func(registry *Registry)) error {
	cmd := RegistryCmd{Exec: exec, done: make(chan struct{})}
	select {
	case mgr.cmds <- cmd:
	case <-mgr.quit:
		return ErrStopped
	}
	<-cmd.done
	return nil
}

// Stop ends the manager goroutine after any running command. Safe to call more than once.
func (mgr *RegistryMgr) Stop() {
	mgr.once.Do(func() { close(mgr.quit) })
	<-mgr.exit
}
