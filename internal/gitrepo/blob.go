package gitrepo

// ReadBlob returns the content of path at HEAD, used by the preview
// pane when showing file content in Browse.
func (r *Repo) ReadBlob(path string) ([]byte, error) {
	head, err := r.Head()
	if err != nil {
		return nil, err
	}
	tree, err := head.Tree()
	if err != nil {
		return nil, wrap(KindIoError, path, err)
	}
	f, err := tree.File(path)
	if err != nil {
		return nil, wrap(KindPathNotFound, path, err)
	}
	content, err := f.Contents()
	if err != nil {
		return nil, wrap(KindIoError, path, err)
	}
	return []byte(content), nil
}
