/*
 * Copyright (c) 2025, Veritag Labs. (https://veritag.io).
 *
 * Veritag Labs licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package log

const (
	// LoggerKeyComponentName is the key used to identify the component name in the logger.
	LoggerKeyComponentName = "component"
	// LoggerKeySessionID is the key used to identify the flow session ID in the logger.
	LoggerKeySessionID = "sessionId"
	// LoggerKeyCampaignID is the key used to identify the campaign ID in the logger.
	LoggerKeyCampaignID = "campaignId"
	// LoggerKeyBrandID is the key used to identify the brand ID in the logger.
	LoggerKeyBrandID = "brandId"
	// LoggerKeyTemplateID is the key used to identify the flow template ID in the logger.
	LoggerKeyTemplateID = "templateId"
	// LoggerKeyQRID is the key used to identify the QR code ID in the logger.
	LoggerKeyQRID = "qrId"
)
