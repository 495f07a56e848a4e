package schema

// Annotation is used to attach arbitrary metadata to schema objects.
// The implementing type must be serializable to JSON raw value (e.g.
// struct, map or slice). Annotations are identified by name, and two
// annotations with the same name are merged when both implement Merger.
type Annotation interface {
	// Name defines the name of the annotation to be retrieved by the codegen.
	Name() string
}

// Merger wraps the single Merge function that allows an annotation to
// define how it should be merged with another annotation of the same name.
type Merger interface {
	Merge(Annotation) Annotation
}

// CommentAnnotation is a builtin schema annotation for attaching a comment
// to a schema object.
type CommentAnnotation struct {
	Text string // Comment text.
}

// Name implements the Annotation interface.
func (*CommentAnnotation) Name() string {
	return "Comment"
}

// Comment is a builtin annotation for commenting a schema object.
func Comment(text string) *CommentAnnotation {
	return &CommentAnnotation{Text: text}
}
