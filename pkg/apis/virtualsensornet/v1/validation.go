/*
Copyright 2026 The OSIRIS Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/aghigo/osiris-web-backend/pkg/apis/validation"
)

func (t ValueType) Validate(field string) error {
	switch t {
	case ValueTypeNumber, ValueTypeInteger, ValueTypeReal, ValueTypeLogic, ValueTypeText:
		return nil
	}
	return validation.MakeValidationErr(validation.ErrorUnsupportedType, field, t, "not a valid value type")
}

func (f Field) Validate(field string) error {
	result := &multierror.Error{}

	result = multierror.Append(result, validation.RequireString(field+".Name", f.Name))
	if f.DataTypeID <= 0 {
		result = multierror.Append(result, validation.MakeValidationErr(validation.ErrorInvalidValue, field+".DataTypeID", f.DataTypeID, "must be a positive id"))
	}

	return result.ErrorOrNil()
}

func (l *Link) Validate() error {
	result := &multierror.Error{}

	result = multierror.Append(result,
		validation.RequireString("Link.SensorID", l.SensorID),
		validation.RequireString("Link.CollectorID", l.CollectorID),
		validation.RequireString("Link.NetworkID", l.NetworkID))

	for i, f := range l.Fields {
		result = multierror.Append(result, f.Validate(fmt.Sprintf("Link.Fields[%d]", i)))
	}

	return result.ErrorOrNil()
}

func (d *DataType) Validate() error {
	result := &multierror.Error{}

	result = multierror.Append(result,
		validation.RequireString("DataType.DisplayName", d.DisplayName),
		d.Type.Validate("DataType.Type"))
	if d.MinValue > d.MaxValue {
		result = multierror.Append(result, validation.MakeValidationErr(validation.ErrorInvalidValue, "DataType.MinValue", d.MinValue,
			fmt.Sprintf("greater than MaxValue %v", d.MaxValue)))
	}

	return result.ErrorOrNil()
}
