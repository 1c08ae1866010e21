package ontology

// Query methods answer from asserted axioms only. They never infer: from
// A ⊑ B and B ⊑ C they do not conclude A ⊑ C. They never mutate and never
// fail; a foreign or nil argument simply matches nothing.

// DirectSubclassesOf returns the subclass side of every asserted SubClass
// axiom whose superclass is structurally equal to expr.
//
// Result order is unspecified.
func (o *Ontology) DirectSubclassesOf(expr ClassExpression) []ClassExpression {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var out []ClassExpression
	o.subClasses.each(func(sc SubClass) {
		if equalExpr(sc.Superclass, expr) {
			out = append(out, cloneExpr(sc.Subclass))
		}
	})
	return out
}

// DirectSuperclassesOf returns the superclass side of every asserted
// SubClass axiom whose subclass is structurally equal to expr.
//
// Result order is unspecified.
func (o *Ontology) DirectSuperclassesOf(expr ClassExpression) []ClassExpression {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var out []ClassExpression
	o.subClasses.each(func(sc SubClass) {
		if equalExpr(sc.Subclass, expr) {
			out = append(out, cloneExpr(sc.Superclass))
		}
	})
	return out
}

// IsDirectSubclassOf reports whether the axiom sub ⊑ super was asserted.
func (o *Ontology) IsDirectSubclassOf(super, sub ClassExpression) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.subClasses.contains(SubClass{Superclass: super, Subclass: sub})
}

// HasClass reports whether c was defined.
func (o *Ontology) HasClass(c Class) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.classes.contains(c)
}

// HasObjectProperty reports whether p was defined.
func (o *Ontology) HasObjectProperty(p ObjectProperty) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.objectProperties.contains(p)
}

// Classes returns every defined class in definition order.
func (o *Ontology) Classes() []Class {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.classes.all()
}

// ObjectProperties returns every defined object property in definition order.
func (o *Ontology) ObjectProperties() []ObjectProperty {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.objectProperties.all()
}

// SubClassAxioms returns every asserted SubClass axiom in assertion order.
func (o *Ontology) SubClassAxioms() []SubClass {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.subClasses.all()
}

// SomeExpressions returns every defined existential restriction.
func (o *Ontology) SomeExpressions() []Some {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.some.all()
}

// AndExpressions returns every defined conjunction.
func (o *Ontology) AndExpressions() []And {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.and.all()
}

// OrExpressions returns every defined disjunction.
func (o *Ontology) OrExpressions() []Or {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.or.all()
}

// NotExpressions returns every defined complement.
func (o *Ontology) NotExpressions() []Not {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.not.all()
}

// Stats counts the interned names and the members of each collection.
type Stats struct {
	Names            int `json:"names"`
	Classes          int `json:"classes"`
	ObjectProperties int `json:"object_properties"`
	SubClassAxioms   int `json:"subclass_axioms"`
	Some             int `json:"some"`
	And              int `json:"and"`
	Or               int `json:"or"`
	Not              int `json:"not"`
}

// Stats returns the current collection sizes.
func (o *Ontology) Stats() Stats {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return Stats{
		Names:            len(o.names),
		Classes:          o.classes.len(),
		ObjectProperties: o.objectProperties.len(),
		SubClassAxioms:   o.subClasses.len(),
		Some:             o.some.len(),
		And:              o.and.len(),
		Or:               o.or.len(),
		Not:              o.not.len(),
	}
}
