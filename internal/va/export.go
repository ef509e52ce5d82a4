package va

// ExportSurfaceHandle returns a dma-buf file descriptor for
// surfaceID's currently bound decoded buffer.
func (d *Driver) ExportSurfaceHandle(surfaceID uint32) (int, error) {
	surf, err := d.surfaceByID(surfaceID)
	if err != nil {
		return -1, err
	}
	sess := surf.Session()
	if sess == nil {
		return -1, ErrOperationFailed
	}
	fd, err := sess.ExportSurface(surf)
	if err != nil {
		return -1, err
	}
	return fd, nil
}
