package dicom

import (
	"fmt"

	"github.com/codeninja55/go-dcmx/dicom/tag"
)

// Collection groups datasets by their DICOM information model identity:
// unique by SOP instance, indexed by series, study and patient.
//
// A Collection is not safe for concurrent mutation.
type Collection struct {
	bySOPInstance map[string]*DataSet
	bySeries      map[string][]*DataSet
	byStudy       map[string][]*DataSet
	byPatient     map[string][]*DataSet

	// order preserves insertion order for DataSets().
	order []string
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{
		bySOPInstance: make(map[string]*DataSet),
		bySeries:      make(map[string][]*DataSet),
		byStudy:       make(map[string][]*DataSet),
		byPatient:     make(map[string][]*DataSet),
	}
}

// Add indexes a dataset. The dataset must carry a SOPInstanceUID
// (0008,0018); duplicates are rejected. Series, study and patient indexes
// are populated when the corresponding elements are present.
func (c *Collection) Add(ds *DataSet) error {
	if ds == nil {
		return fmt.Errorf("cannot add nil dataset")
	}

	sopInstance, err := ds.GetString(tag.New(0x0008, 0x0018))
	if err != nil || sopInstance == "" {
		return fmt.Errorf("dataset has no SOPInstanceUID (0008,0018): %w", err)
	}
	if _, exists := c.bySOPInstance[sopInstance]; exists {
		return fmt.Errorf("duplicate SOPInstanceUID %q", sopInstance)
	}

	c.bySOPInstance[sopInstance] = ds
	c.order = append(c.order, sopInstance)

	if series, err := ds.GetString(tag.New(0x0020, 0x000E)); err == nil && series != "" {
		c.bySeries[series] = append(c.bySeries[series], ds)
	}
	if study, err := ds.GetString(tag.New(0x0020, 0x000D)); err == nil && study != "" {
		c.byStudy[study] = append(c.byStudy[study], ds)
	}
	if patient, err := ds.GetString(tag.New(0x0010, 0x0020)); err == nil && patient != "" {
		c.byPatient[patient] = append(c.byPatient[patient], ds)
	}
	return nil
}

// Get returns the dataset with the given SOPInstanceUID.
func (c *Collection) Get(sopInstanceUID string) (*DataSet, error) {
	ds, ok := c.bySOPInstance[sopInstanceUID]
	if !ok {
		return nil, fmt.Errorf("%w: SOPInstanceUID %q", ErrNotFound, sopInstanceUID)
	}
	return ds, nil
}

// Contains reports whether a SOP instance is present.
func (c *Collection) Contains(sopInstanceUID string) bool {
	_, ok := c.bySOPInstance[sopInstanceUID]
	return ok
}

// BySeries returns the datasets of one series, in insertion order.
func (c *Collection) BySeries(seriesInstanceUID string) []*DataSet {
	return c.bySeries[seriesInstanceUID]
}

// ByStudy returns the datasets of one study, in insertion order.
func (c *Collection) ByStudy(studyInstanceUID string) []*DataSet {
	return c.byStudy[studyInstanceUID]
}

// ByPatient returns the datasets of one patient, in insertion order.
func (c *Collection) ByPatient(patientID string) []*DataSet {
	return c.byPatient[patientID]
}

// Remove drops a SOP instance from every index.
func (c *Collection) Remove(sopInstanceUID string) error {
	ds, ok := c.bySOPInstance[sopInstanceUID]
	if !ok {
		return fmt.Errorf("%w: SOPInstanceUID %q", ErrNotFound, sopInstanceUID)
	}
	delete(c.bySOPInstance, sopInstanceUID)

	for i, id := range c.order {
		if id == sopInstanceUID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	for key, list := range c.bySeries {
		c.bySeries[key] = removeDataSet(list, ds)
	}
	for key, list := range c.byStudy {
		c.byStudy[key] = removeDataSet(list, ds)
	}
	for key, list := range c.byPatient {
		c.byPatient[key] = removeDataSet(list, ds)
	}
	return nil
}

func removeDataSet(list []*DataSet, ds *DataSet) []*DataSet {
	for i, candidate := range list {
		if candidate == ds {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Len returns the number of SOP instances in the collection.
func (c *Collection) Len() int {
	return len(c.bySOPInstance)
}

// DataSets returns every dataset in insertion order.
func (c *Collection) DataSets() []*DataSet {
	result := make([]*DataSet, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.bySOPInstance[id])
	}
	return result
}
