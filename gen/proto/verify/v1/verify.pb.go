// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: verify/v1/verify.proto

package verifypb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ManualClaim struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        string                 `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	BlockNumber   string                 `protobuf:"bytes,2,opt,name=block_number,json=blockNumber,proto3" json:"block_number,omitempty"`
	FlatNumber    string                 `protobuf:"bytes,3,opt,name=flat_number,json=flatNumber,proto3" json:"flat_number,omitempty"`
	Purpose       string                 `protobuf:"bytes,4,opt,name=purpose,proto3" json:"purpose,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ManualClaim) Reset() {
	*x = ManualClaim{}
	mi := &file_verify_v1_verify_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ManualClaim) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ManualClaim) ProtoMessage() {}

func (x *ManualClaim) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ManualClaim.ProtoReflect.Descriptor instead.
func (*ManualClaim) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{0}
}

func (x *ManualClaim) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *ManualClaim) GetBlockNumber() string {
	if x != nil {
		return x.BlockNumber
	}
	return ""
}

func (x *ManualClaim) GetFlatNumber() string {
	if x != nil {
		return x.FlatNumber
	}
	return ""
}

func (x *ManualClaim) GetPurpose() string {
	if x != nil {
		return x.Purpose
	}
	return ""
}

type VerifyReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileContent   []byte                 `protobuf:"bytes,1,opt,name=file_content,json=fileContent,proto3" json:"file_content,omitempty"`
	MimeType      string                 `protobuf:"bytes,2,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	Claim         *ManualClaim           `protobuf:"bytes,3,opt,name=claim,proto3" json:"claim,omitempty"`
	SocietyId     string                 `protobuf:"bytes,4,opt,name=society_id,json=societyId,proto3" json:"society_id,omitempty"`
	MemberId      string                 `protobuf:"bytes,5,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyReceiptRequest) Reset() {
	*x = VerifyReceiptRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyReceiptRequest) ProtoMessage() {}

func (x *VerifyReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyReceiptRequest.ProtoReflect.Descriptor instead.
func (*VerifyReceiptRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{1}
}

func (x *VerifyReceiptRequest) GetFileContent() []byte {
	if x != nil {
		return x.FileContent
	}
	return nil
}

func (x *VerifyReceiptRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *VerifyReceiptRequest) GetClaim() *ManualClaim {
	if x != nil {
		return x.Claim
	}
	return nil
}

func (x *VerifyReceiptRequest) GetSocietyId() string {
	if x != nil {
		return x.SocietyId
	}
	return ""
}

func (x *VerifyReceiptRequest) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

type Extraction struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	RawText    string                 `protobuf:"bytes,1,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	Confidence float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	// extracted fields; empty when the parser found nothing
	Amount        string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
	BlockNumber   string `protobuf:"bytes,4,opt,name=block_number,json=blockNumber,proto3" json:"block_number,omitempty"`
	FlatNumber    string `protobuf:"bytes,5,opt,name=flat_number,json=flatNumber,proto3" json:"flat_number,omitempty"`
	PaymentDate   string `protobuf:"bytes,6,opt,name=payment_date,json=paymentDate,proto3" json:"payment_date,omitempty"` // YYYY-MM-DD
	Purpose       string `protobuf:"bytes,7,opt,name=purpose,proto3" json:"purpose,omitempty"`
	Reason        string `protobuf:"bytes,8,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Extraction) Reset() {
	*x = Extraction{}
	mi := &file_verify_v1_verify_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Extraction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Extraction) ProtoMessage() {}

func (x *Extraction) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Extraction.ProtoReflect.Descriptor instead.
func (*Extraction) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{2}
}

func (x *Extraction) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *Extraction) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Extraction) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Extraction) GetBlockNumber() string {
	if x != nil {
		return x.BlockNumber
	}
	return ""
}

func (x *Extraction) GetFlatNumber() string {
	if x != nil {
		return x.FlatNumber
	}
	return ""
}

func (x *Extraction) GetPaymentDate() string {
	if x != nil {
		return x.PaymentDate
	}
	return ""
}

func (x *Extraction) GetPurpose() string {
	if x != nil {
		return x.Purpose
	}
	return ""
}

func (x *Extraction) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type VerifyReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Extraction    *Extraction            `protobuf:"bytes,1,opt,name=extraction,proto3" json:"extraction,omitempty"`
	MatchScore    float64                `protobuf:"fixed64,2,opt,name=match_score,json=matchScore,proto3" json:"match_score,omitempty"`
	Approved      bool                   `protobuf:"varint,3,opt,name=approved,proto3" json:"approved,omitempty"`
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	AuditId       string                 `protobuf:"bytes,5,opt,name=audit_id,json=auditId,proto3" json:"audit_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerifyReceiptResponse) Reset() {
	*x = VerifyReceiptResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerifyReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerifyReceiptResponse) ProtoMessage() {}

func (x *VerifyReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerifyReceiptResponse.ProtoReflect.Descriptor instead.
func (*VerifyReceiptResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{3}
}

func (x *VerifyReceiptResponse) GetExtraction() *Extraction {
	if x != nil {
		return x.Extraction
	}
	return nil
}

func (x *VerifyReceiptResponse) GetMatchScore() float64 {
	if x != nil {
		return x.MatchScore
	}
	return 0
}

func (x *VerifyReceiptResponse) GetApproved() bool {
	if x != nil {
		return x.Approved
	}
	return false
}

func (x *VerifyReceiptResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *VerifyReceiptResponse) GetAuditId() string {
	if x != nil {
		return x.AuditId
	}
	return ""
}

type Verification struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	SocietyId            string                 `protobuf:"bytes,2,opt,name=society_id,json=societyId,proto3" json:"society_id,omitempty"`
	MemberId             string                 `protobuf:"bytes,3,opt,name=member_id,json=memberId,proto3" json:"member_id,omitempty"`
	ClaimAmount          string                 `protobuf:"bytes,4,opt,name=claim_amount,json=claimAmount,proto3" json:"claim_amount,omitempty"`
	ClaimBlockNumber     string                 `protobuf:"bytes,5,opt,name=claim_block_number,json=claimBlockNumber,proto3" json:"claim_block_number,omitempty"`
	ClaimFlatNumber      string                 `protobuf:"bytes,6,opt,name=claim_flat_number,json=claimFlatNumber,proto3" json:"claim_flat_number,omitempty"`
	ClaimPurpose         string                 `protobuf:"bytes,7,opt,name=claim_purpose,json=claimPurpose,proto3" json:"claim_purpose,omitempty"`
	ExtractedAmount      string                 `protobuf:"bytes,8,opt,name=extracted_amount,json=extractedAmount,proto3" json:"extracted_amount,omitempty"`
	ExtractedBlockNumber string                 `protobuf:"bytes,9,opt,name=extracted_block_number,json=extractedBlockNumber,proto3" json:"extracted_block_number,omitempty"`
	ExtractedFlatNumber  string                 `protobuf:"bytes,10,opt,name=extracted_flat_number,json=extractedFlatNumber,proto3" json:"extracted_flat_number,omitempty"`
	ExtractedPaymentDate string                 `protobuf:"bytes,11,opt,name=extracted_payment_date,json=extractedPaymentDate,proto3" json:"extracted_payment_date,omitempty"`
	ExtractedPurpose     string                 `protobuf:"bytes,12,opt,name=extracted_purpose,json=extractedPurpose,proto3" json:"extracted_purpose,omitempty"`
	Confidence           float64                `protobuf:"fixed64,13,opt,name=confidence,proto3" json:"confidence,omitempty"`
	MatchScore           float64                `protobuf:"fixed64,14,opt,name=match_score,json=matchScore,proto3" json:"match_score,omitempty"`
	Status               string                 `protobuf:"bytes,15,opt,name=status,proto3" json:"status,omitempty"`
	Reason               string                 `protobuf:"bytes,16,opt,name=reason,proto3" json:"reason,omitempty"`
	CreatedAt            string                 `protobuf:"bytes,17,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Verification) Reset() {
	*x = Verification{}
	mi := &file_verify_v1_verify_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Verification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Verification) ProtoMessage() {}

func (x *Verification) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Verification.ProtoReflect.Descriptor instead.
func (*Verification) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{4}
}

func (x *Verification) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Verification) GetSocietyId() string {
	if x != nil {
		return x.SocietyId
	}
	return ""
}

func (x *Verification) GetMemberId() string {
	if x != nil {
		return x.MemberId
	}
	return ""
}

func (x *Verification) GetClaimAmount() string {
	if x != nil {
		return x.ClaimAmount
	}
	return ""
}

func (x *Verification) GetClaimBlockNumber() string {
	if x != nil {
		return x.ClaimBlockNumber
	}
	return ""
}

func (x *Verification) GetClaimFlatNumber() string {
	if x != nil {
		return x.ClaimFlatNumber
	}
	return ""
}

func (x *Verification) GetClaimPurpose() string {
	if x != nil {
		return x.ClaimPurpose
	}
	return ""
}

func (x *Verification) GetExtractedAmount() string {
	if x != nil {
		return x.ExtractedAmount
	}
	return ""
}

func (x *Verification) GetExtractedBlockNumber() string {
	if x != nil {
		return x.ExtractedBlockNumber
	}
	return ""
}

func (x *Verification) GetExtractedFlatNumber() string {
	if x != nil {
		return x.ExtractedFlatNumber
	}
	return ""
}

func (x *Verification) GetExtractedPaymentDate() string {
	if x != nil {
		return x.ExtractedPaymentDate
	}
	return ""
}

func (x *Verification) GetExtractedPurpose() string {
	if x != nil {
		return x.ExtractedPurpose
	}
	return ""
}

func (x *Verification) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Verification) GetMatchScore() float64 {
	if x != nil {
		return x.MatchScore
	}
	return 0
}

func (x *Verification) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Verification) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *Verification) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListAuditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SocietyId     string                 `protobuf:"bytes,1,opt,name=society_id,json=societyId,proto3" json:"society_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditRequest) Reset() {
	*x = ListAuditRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditRequest) ProtoMessage() {}

func (x *ListAuditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditRequest.ProtoReflect.Descriptor instead.
func (*ListAuditRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{5}
}

func (x *ListAuditRequest) GetSocietyId() string {
	if x != nil {
		return x.SocietyId
	}
	return ""
}

func (x *ListAuditRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListAuditRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListAuditResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Verifications []*Verification        `protobuf:"bytes,1,rep,name=verifications,proto3" json:"verifications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAuditResponse) Reset() {
	*x = ListAuditResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAuditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAuditResponse) ProtoMessage() {}

func (x *ListAuditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAuditResponse.ProtoReflect.Descriptor instead.
func (*ListAuditResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{6}
}

func (x *ListAuditResponse) GetVerifications() []*Verification {
	if x != nil {
		return x.Verifications
	}
	return nil
}

type ExportAuditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SocietyId     string                 `protobuf:"bytes,1,opt,name=society_id,json=societyId,proto3" json:"society_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditRequest) Reset() {
	*x = ExportAuditRequest{}
	mi := &file_verify_v1_verify_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditRequest) ProtoMessage() {}

func (x *ExportAuditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditRequest.ProtoReflect.Descriptor instead.
func (*ExportAuditRequest) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{7}
}

func (x *ExportAuditRequest) GetSocietyId() string {
	if x != nil {
		return x.SocietyId
	}
	return ""
}

func (x *ExportAuditRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportAuditRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportAuditResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAuditResponse) Reset() {
	*x = ExportAuditResponse{}
	mi := &file_verify_v1_verify_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAuditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAuditResponse) ProtoMessage() {}

func (x *ExportAuditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_verify_v1_verify_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAuditResponse.ProtoReflect.Descriptor instead.
func (*ExportAuditResponse) Descriptor() ([]byte, []int) {
	return file_verify_v1_verify_proto_rawDescGZIP(), []int{8}
}

func (x *ExportAuditResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportAuditResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_verify_v1_verify_proto protoreflect.FileDescriptor

const file_verify_v1_verify_proto_rawDesc = "" +
	"\n" +
	"\x16verify/v1/verify.proto\x12\tverify.v1\"\x83\x01\n" +
	"\vManualClaim\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\tR\x06amount\x12!\n" +
	"\fblock_number\x18\x02 \x01(\tR\vblockNumber\x12\x1f\n" +
	"\vflat_number\x18\x03 \x01(\tR\n" +
	"flatNumber\x12\x18\n" +
	"\apurpose\x18\x04 \x01(\tR\apurpose\"\xc0\x01\n" +
	"\x14VerifyReceiptRequest\x12!\n" +
	"\ffile_content\x18\x01 \x01(\fR\vfileContent\x12\x1b\n" +
	"\tmime_type\x18\x02 \x01(\tR\bmimeType\x12,\n" +
	"\x05claim\x18\x03 \x01(\v2\x16.verify.v1.ManualClaimR\x05claim\x12\x1d\n" +
	"\n" +
	"society_id\x18\x04 \x01(\tR\tsocietyId\x12\x1b\n" +
	"\tmember_id\x18\x05 \x01(\tR\bmemberId\"\xf8\x01\n" +
	"\n" +
	"Extraction\x12\x19\n" +
	"\braw_text\x18\x01 \x01(\tR\arawText\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x01R\n" +
	"confidence\x12\x16\n" +
	"\x06amount\x18\x03 \x01(\tR\x06amount\x12!\n" +
	"\fblock_number\x18\x04 \x01(\tR\vblockNumber\x12\x1f\n" +
	"\vflat_number\x18\x05 \x01(\tR\n" +
	"flatNumber\x12!\n" +
	"\fpayment_date\x18\x06 \x01(\tR\vpaymentDate\x12\x18\n" +
	"\apurpose\x18\a \x01(\tR\apurpose\x12\x16\n" +
	"\x06reason\x18\b \x01(\tR\x06reason\"\xbe\x01\n" +
	"\x15VerifyReceiptResponse\x125\n" +
	"\n" +
	"extraction\x18\x01 \x01(\v2\x15.verify.v1.ExtractionR\n" +
	"extraction\x12\x1f\n" +
	"\vmatch_score\x18\x02 \x01(\x01R\n" +
	"matchScore\x12\x1a\n" +
	"\bapproved\x18\x03 \x01(\bR\bapproved\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x19\n" +
	"\baudit_id\x18\x05 \x01(\tR\aauditId\"\x84\x05\n" +
	"\fVerification\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"society_id\x18\x02 \x01(\tR\tsocietyId\x12\x1b\n" +
	"\tmember_id\x18\x03 \x01(\tR\bmemberId\x12!\n" +
	"\fclaim_amount\x18\x04 \x01(\tR\vclaimAmount\x12,\n" +
	"\x12claim_block_number\x18\x05 \x01(\tR\x10claimBlockNumber\x12*\n" +
	"\x11claim_flat_number\x18\x06 \x01(\tR\x0fclaimFlatNumber\x12#\n" +
	"\rclaim_purpose\x18\a \x01(\tR\fclaimPurpose\x12)\n" +
	"\x10extracted_amount\x18\b \x01(\tR\x0fextractedAmount\x124\n" +
	"\x16extracted_block_number\x18\t \x01(\tR\x14extractedBlockNumber\x122\n" +
	"\x15extracted_flat_number\x18\n" +
	" \x01(\tR\x13extractedFlatNumber\x124\n" +
	"\x16extracted_payment_date\x18\v \x01(\tR\x14extractedPaymentDate\x12+\n" +
	"\x11extracted_purpose\x18\f \x01(\tR\x10extractedPurpose\x12\x1e\n" +
	"\n" +
	"confidence\x18\r \x01(\x01R\n" +
	"confidence\x12\x1f\n" +
	"\vmatch_score\x18\x0e \x01(\x01R\n" +
	"matchScore\x12\x16\n" +
	"\x06status\x18\x0f \x01(\tR\x06status\x12\x16\n" +
	"\x06reason\x18\x10 \x01(\tR\x06reason\x12\x1d\n" +
	"\n" +
	"created_at\x18\x11 \x01(\tR\tcreatedAt\"g\n" +
	"\x10ListAuditRequest\x12\x1d\n" +
	"\n" +
	"society_id\x18\x01 \x01(\tR\tsocietyId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"R\n" +
	"\x11ListAuditResponse\x12=\n" +
	"\rverifications\x18\x01 \x03(\v2\x17.verify.v1.VerificationR\rverifications\"i\n" +
	"\x12ExportAuditRequest\x12\x1d\n" +
	"\n" +
	"society_id\x18\x01 \x01(\tR\tsocietyId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"E\n" +
	"\x13ExportAuditResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\xf9\x01\n" +
	"\rVerifyService\x12R\n" +
	"\rVerifyReceipt\x12\x1f.verify.v1.VerifyReceiptRequest\x1a .verify.v1.VerifyReceiptResponse\x12F\n" +
	"\tListAudit\x12\x1b.verify.v1.ListAuditRequest\x1a\x1c.verify.v1.ListAuditResponse\x12L\n" +
	"\vExportAudit\x12\x1d.verify.v1.ExportAuditRequest\x1a\x1e.verify.v1.ExportAuditResponseBFZDgithub.com/societydesk/receipt-verifier/gen/proto/verify/v1;verifypbb\x06proto3"

var (
	file_verify_v1_verify_proto_rawDescOnce sync.Once
	file_verify_v1_verify_proto_rawDescData []byte
)

func file_verify_v1_verify_proto_rawDescGZIP() []byte {
	file_verify_v1_verify_proto_rawDescOnce.Do(func() {
		file_verify_v1_verify_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_verify_v1_verify_proto_rawDesc), len(file_verify_v1_verify_proto_rawDesc)))
	})
	return file_verify_v1_verify_proto_rawDescData
}

var file_verify_v1_verify_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_verify_v1_verify_proto_goTypes = []any{
	(*ManualClaim)(nil),           // 0: verify.v1.ManualClaim
	(*VerifyReceiptRequest)(nil),  // 1: verify.v1.VerifyReceiptRequest
	(*Extraction)(nil),            // 2: verify.v1.Extraction
	(*VerifyReceiptResponse)(nil), // 3: verify.v1.VerifyReceiptResponse
	(*Verification)(nil),          // 4: verify.v1.Verification
	(*ListAuditRequest)(nil),      // 5: verify.v1.ListAuditRequest
	(*ListAuditResponse)(nil),     // 6: verify.v1.ListAuditResponse
	(*ExportAuditRequest)(nil),    // 7: verify.v1.ExportAuditRequest
	(*ExportAuditResponse)(nil),   // 8: verify.v1.ExportAuditResponse
}
var file_verify_v1_verify_proto_depIdxs = []int32{
	0, // 0: verify.v1.VerifyReceiptRequest.claim:type_name -> verify.v1.ManualClaim
	2, // 1: verify.v1.VerifyReceiptResponse.extraction:type_name -> verify.v1.Extraction
	4, // 2: verify.v1.ListAuditResponse.verifications:type_name -> verify.v1.Verification
	1, // 3: verify.v1.VerifyService.VerifyReceipt:input_type -> verify.v1.VerifyReceiptRequest
	5, // 4: verify.v1.VerifyService.ListAudit:input_type -> verify.v1.ListAuditRequest
	7, // 5: verify.v1.VerifyService.ExportAudit:input_type -> verify.v1.ExportAuditRequest
	3, // 6: verify.v1.VerifyService.VerifyReceipt:output_type -> verify.v1.VerifyReceiptResponse
	6, // 7: verify.v1.VerifyService.ListAudit:output_type -> verify.v1.ListAuditResponse
	8, // 8: verify.v1.VerifyService.ExportAudit:output_type -> verify.v1.ExportAuditResponse
	6, // [6:9] is the sub-list for method output_type
	3, // [3:6] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_verify_v1_verify_proto_init() }
func file_verify_v1_verify_proto_init() {
	if File_verify_v1_verify_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_verify_v1_verify_proto_rawDesc), len(file_verify_v1_verify_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_verify_v1_verify_proto_goTypes,
		DependencyIndexes: file_verify_v1_verify_proto_depIdxs,
		MessageInfos:      file_verify_v1_verify_proto_msgTypes,
	}.Build()
	File_verify_v1_verify_proto = out.File
	file_verify_v1_verify_proto_goTypes = nil
	file_verify_v1_verify_proto_depIdxs = nil
}
